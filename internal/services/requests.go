package services

import (
	"carpetstore/internal/dto"
	"carpetstore/internal/mediator"
)

// Request kinds.
const (
	KindCreateCarpet   mediator.Kind = "carpet.create"
	KindUpdateCarpet   mediator.Kind = "carpet.update"
	KindDeleteCarpet   mediator.Kind = "carpet.delete"
	KindGetCarpet      mediator.Kind = "carpet.get"
	KindListCarpets    mediator.Kind = "carpet.list"
	KindCreateCategory mediator.Kind = "category.create"
	KindUpdateCategory mediator.Kind = "category.update"
	KindDeleteCategory mediator.Kind = "category.delete"
	KindGetCategory    mediator.Kind = "category.get"
	KindListCategories mediator.Kind = "category.list"
)

type CreateCarpetCommand struct{ Carpet dto.CreateCarpetDto }

func (CreateCarpetCommand) Kind() mediator.Kind { return KindCreateCarpet }

type UpdateCarpetCommand struct{ Carpet dto.UpdateCarpetDto }

func (UpdateCarpetCommand) Kind() mediator.Kind { return KindUpdateCarpet }

type DeleteCarpetCommand struct{ ID string }

func (DeleteCarpetCommand) Kind() mediator.Kind { return KindDeleteCarpet }

type GetCarpetByIDQuery struct{ ID string }

func (GetCarpetByIDQuery) Kind() mediator.Kind { return KindGetCarpet }

type ListCarpetsQuery struct{}

func (ListCarpetsQuery) Kind() mediator.Kind { return KindListCarpets }

type CreateCategoryCommand struct{ Category dto.CreateCategoryDto }

func (CreateCategoryCommand) Kind() mediator.Kind { return KindCreateCategory }

type UpdateCategoryCommand struct{ Category dto.UpdateCategoryDto }

func (UpdateCategoryCommand) Kind() mediator.Kind { return KindUpdateCategory }

type DeleteCategoryCommand struct{ ID string }

func (DeleteCategoryCommand) Kind() mediator.Kind { return KindDeleteCategory }

type GetCategoryByIDQuery struct{ ID string }

func (GetCategoryByIDQuery) Kind() mediator.Kind { return KindGetCategory }

type ListCategoriesQuery struct{}

func (ListCategoriesQuery) Kind() mediator.Kind { return KindListCategories }
