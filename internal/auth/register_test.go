package auth

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
)

type stubLoginIDChecker struct {
	taken     map[string]bool
	takenAll  bool
	checkErr  error
	callCount int
}

func (s *stubLoginIDChecker) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	s.callCount++
	if s.checkErr != nil {
		return false, s.checkErr
	}
	if s.takenAll {
		return true, nil
	}
	return s.taken[loginID], nil
}

func TestGenerateUniqueLoginID(t *testing.T) {
	checker := &stubLoginIDChecker{}

	id, err := generateUniqueLoginID(context.Background(), checker)
	if err != nil {
		t.Fatalf("generate login id: %v", err)
	}
	if len(id) != loginIDLength {
		t.Fatalf("expected %d digits, got %q", loginIDLength, id)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q", id)
		}
	}
}

func TestGenerateUniqueLoginIDExhaustsAttempts(t *testing.T) {
	checker := &stubLoginIDChecker{takenAll: true}

	_, err := generateUniqueLoginID(context.Background(), checker)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if checker.callCount != loginIDMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", loginIDMaxAttempts, checker.callCount)
	}
}

func TestGenerateUniqueLoginIDCheckFailure(t *testing.T) {
	checker := &stubLoginIDChecker{checkErr: errors.New("db down")}

	_, err := generateUniqueLoginID(context.Background(), checker)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNewRegisterServiceValidatesDependencies(t *testing.T) {
	if _, err := NewRegisterService(RegisterServiceParams{}); err == nil {
		t.Fatal("expected error for missing database client")
	}
}
