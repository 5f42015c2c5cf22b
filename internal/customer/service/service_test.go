package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	"github.com/smallbiznis/rentora/internal/customer/repository"
	"github.com/smallbiznis/rentora/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (customerdomain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&customerdomain.Customer{}, &customerdomain.CustomerFile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, node
}

func agencyContext(node *snowflake.Node) (context.Context, snowflake.ID) {
	agencyID := node.Generate()
	return agencyctx.WithAgencyID(context.Background(), int64(agencyID)), agencyID
}

func TestCreateRequiresAgencyContext(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), customerdomain.CreateCustomerRequest{
		FirstName: "Jordan",
		Email:     "jordan@example.com",
	})
	if err != customerdomain.ErrInvalidAgency {
		t.Fatalf("expected ErrInvalidAgency, got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	svc, node := newTestService(t)
	ctx, _ := agencyContext(node)

	created, err := svc.Create(ctx, customerdomain.CreateCustomerRequest{
		FirstName: "Jordan",
		LastName:  "Diaz",
		Email:     "jordan@example.com",
		Country:   "US",
	})
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	if created.DisplayName() != "Jordan Diaz" {
		t.Fatalf("expected display name Jordan Diaz, got %s", created.DisplayName())
	}

	got, err := svc.GetByID(ctx, customerdomain.GetCustomerRequest{ID: created.ID.String()})
	if err != nil {
		t.Fatalf("failed to get customer: %v", err)
	}
	if got.Email != "jordan@example.com" {
		t.Fatalf("expected email jordan@example.com, got %s", got.Email)
	}
}

func TestGetScopedToAgency(t *testing.T) {
	svc, node := newTestService(t)
	ctxA, _ := agencyContext(node)
	ctxB, _ := agencyContext(node)

	created, err := svc.Create(ctxA, customerdomain.CreateCustomerRequest{
		FirstName: "Sam",
		Email:     "sam@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	if _, err := svc.GetByID(ctxB, customerdomain.GetCustomerRequest{ID: created.ID.String()}); err != customerdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound across agencies, got %v", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc, node := newTestService(t)
	ctx, _ := agencyContext(node)

	created, err := svc.Create(ctx, customerdomain.CreateCustomerRequest{
		FirstName: "Priya",
		LastName:  "Patel",
		Email:     "priya@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	phone := "+91 98765 43210"
	updated, err := svc.Update(ctx, customerdomain.UpdateCustomerRequest{
		ID:    created.ID.String(),
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("failed to update customer: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("expected phone %s, got %s", phone, updated.Phone)
	}
	if updated.FirstName != "Priya" {
		t.Fatalf("expected first name unchanged, got %s", updated.FirstName)
	}
}

func TestFileMetadataLifecycle(t *testing.T) {
	svc, node := newTestService(t)
	ctx, _ := agencyContext(node)

	created, err := svc.Create(ctx, customerdomain.CreateCustomerRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	file, err := svc.AddFile(ctx, customerdomain.AddFileRequest{
		CustomerID:  created.ID.String(),
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
	})
	if err != nil {
		t.Fatalf("failed to add file: %v", err)
	}

	files, err := svc.ListFiles(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("failed to list files: %v", err)
	}
	if len(files) != 1 || files[0].FileName != "license.pdf" {
		t.Fatalf("expected one file license.pdf, got %+v", files)
	}

	if err := svc.DeleteFile(ctx, file.ID.String()); err != nil {
		t.Fatalf("failed to delete file: %v", err)
	}
	files, err = svc.ListFiles(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("failed to list files: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}
