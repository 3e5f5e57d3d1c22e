package implementation

import (
	"context"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/mapper"
	"nextel-storefront-be/internal/model"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Save(ctx context.Context, order *entity.Order) error {
	modelOrder := r.mapper.ToModel(order)
	return r.db.WithContext(ctx).Create(modelOrder).Error
}

func (r *OrderRepositoryImpl) FindByUser(ctx context.Context, userId string) ([]*entity.Order, error) {
	var modelOrders []*model.Order
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "placed_at", Desc: true},
	)

	if err := query.Find(&modelOrders).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelOrders), nil
}
