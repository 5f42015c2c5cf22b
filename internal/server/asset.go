package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
)

type CreateAssetRequest struct {
	SpecID        string    `json:"spec_id"`
	SerialNumber  string    `json:"serial_number"`
	TagNumber     string    `json:"tag_number"`
	AcquiredDate  time.Time `json:"acquired_date"`
	PurchasePrice float64   `json:"purchase_price"`
}

type UpdateAssetRequest struct {
	SerialNumber  *string    `json:"serial_number"`
	TagNumber     *string    `json:"tag_number"`
	AcquiredDate  *time.Time `json:"acquired_date"`
	PurchasePrice *float64   `json:"purchase_price"`
}

type ListAssetQuery struct {
	PageToken string `form:"page_token"`
	PageSize  int32  `form:"page_size"`
	SpecID    string `form:"spec_id"`
}

func (s *Server) ListAssets(c *gin.Context) {
	var query ListAssetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.assetSvc.List(c.Request.Context(), assetdomain.ListAssetRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
		SpecID:    query.SpecID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	asset, err := s.assetSvc.Create(c.Request.Context(), assetdomain.CreateAssetRequest{
		SpecID:        req.SpecID,
		SerialNumber:  req.SerialNumber,
		TagNumber:     req.TagNumber,
		AcquiredDate:  req.AcquiredDate,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := asset.ID.String()
	s.audit(c, "asset.created", "asset", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (s *Server) GetAssetByID(c *gin.Context) {
	asset, err := s.assetSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (s *Server) UpdateAsset(c *gin.Context) {
	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	asset, err := s.assetSvc.Update(c.Request.Context(), assetdomain.UpdateAssetRequest{
		ID:            c.Param("id"),
		SerialNumber:  req.SerialNumber,
		TagNumber:     req.TagNumber,
		AcquiredDate:  req.AcquiredDate,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := asset.ID.String()
	s.audit(c, "asset.updated", "asset", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": asset})
}

func (s *Server) DeleteAsset(c *gin.Context) {
	id := c.Param("id")
	if err := s.assetSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset.deleted", "asset", &id, nil)

	c.Status(http.StatusNoContent)
}

func (s *Server) ListAssetFiles(c *gin.Context) {
	files, err := s.assetSvc.ListFiles(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": files})
}

func (s *Server) UploadAssetFile(c *gin.Context) {
	upload, err := s.saveUpload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	file, err := s.assetSvc.AddFile(c.Request.Context(), assetdomain.AddFileRequest{
		AssetID:     c.Param("id"),
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
		StoragePath: upload.StoragePath,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := file.ID.String()
	s.audit(c, "asset.file_added", "asset_file", &targetID, map[string]any{
		"file_name": upload.FileName,
	})

	c.JSON(http.StatusOK, gin.H{"data": file})
}

func (s *Server) DeleteAssetFile(c *gin.Context) {
	fileID := c.Param("fileId")
	if err := s.assetSvc.DeleteFile(c.Request.Context(), fileID); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset.file_deleted", "asset_file", &fileID, nil)

	c.Status(http.StatusNoContent)
}

func isAssetValidationError(err error) bool {
	switch {
	case errors.Is(err, assetdomain.ErrInvalidAgency),
		errors.Is(err, assetdomain.ErrInvalidSpec),
		errors.Is(err, assetdomain.ErrInvalidPrice),
		errors.Is(err, assetdomain.ErrInvalidDate),
		errors.Is(err, assetdomain.ErrInvalidFileName),
		errors.Is(err, assetdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
