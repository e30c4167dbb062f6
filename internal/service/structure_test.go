package service

import (
	"context"
	"errors"
	"testing"

	"github.com/srscatalog/backend/internal/model"
)

func TestStructureValidatorPassesVerdictThrough(t *testing.T) {
	env := newTestEnv(t)

	env.parser.ValidateTreeFunc = func(ctx context.Context, tree model.SectionTree) (bool, error) {
		return true, nil
	}
	if !env.validator.Validate(context.Background(), testTree("Введение")) {
		t.Fatalf("expected valid verdict")
	}

	env.parser.ValidateTreeFunc = func(ctx context.Context, tree model.SectionTree) (bool, error) {
		return false, nil
	}
	if env.validator.Validate(context.Background(), testTree("Введение")) {
		t.Fatalf("expected invalid verdict")
	}
}

func TestStructureValidatorMapsFailureToInvalid(t *testing.T) {
	env := newTestEnv(t)
	env.parser.ValidateTreeFunc = func(ctx context.Context, tree model.SectionTree) (bool, error) {
		return false, errors.New("parser service unreachable")
	}

	// 解析服务的故障不向上传播，一律按不合规处理
	if env.validator.Validate(context.Background(), testTree("Введение")) {
		t.Fatalf("expected invalid verdict on parser failure")
	}
}
