package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	domledger "github.com/jhoicas/stocktrack-api/internal/domain/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock y Status se manejan
// vía el motor de transacciones; aquí solo se tocan los campos descriptivos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create valida categoría y proveedor, genera el código único legible y
// persiste el producto. El stock inicial (>= 0) define el estado de partida.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if len(in.Name) < 2 || len(in.Name) > 100 || in.Unit == "" || len(in.Unit) > 20 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByIDAndUser(in.SupplierID, userID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		UniqueCode:  uniqueCode(category.Name, now),
		Unit:        in.Unit,
		Stock:       in.Stock,
		Status:      domledger.DeriveStatus(entity.ProductStatusActive, in.Stock),
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	product.SupplierName = supplier.Name
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del usuario, o nil si no existe o es de otro.
func (uc *ProductUseCase) GetByID(userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos descriptivos. No permite modificar Stock ni Status
// (se manejan vía transacciones, si no el historial dejaría de cuadrar).
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if len(*in.Name) < 2 || len(*in.Name) > 100 {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		if *in.Unit == "" || len(*in.Unit) > 20 {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
		// Cambiar de categoría regenera el código legible, como al crear.
		product.UniqueCode = uniqueCode(category.Name, time.Now())
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByIDAndUser(*in.SupplierID, userID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario, modificados más recientemente primero.
func (uc *ProductUseCase) List(userID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Results: len(items), Items: items}, nil
}

// Delete elimina un producto del usuario. ErrNotFound si no existe o es ajeno.
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

// uniqueCode genera el código legible: nombre de categoría + timestamp base36.
func uniqueCode(categoryName string, now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("%s-%s", categoryName, ts)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		UniqueCode:   p.UniqueCode,
		Unit:         p.Unit,
		Stock:        p.Stock,
		Status:       p.Status,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
