package commands

import (
	"errors"
	"strings"

	"entregas/internal/core/domain/model/branch"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

type CreateBranchCommand struct {
	name    string
	contact branch.Contact

	guard guard.ConstructorGuard
}

func NewCreateBranchCommand(name string, contact branch.Contact) (CreateBranchCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateBranchCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateBranchCommand{name: name, contact: contact, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

func (c CreateBranchCommand) Name() string            { return c.name }
func (c CreateBranchCommand) Contact() branch.Contact { return c.contact }
