package postgres

import (
	"context"

	"pasar/internal/domain/entity"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/domain/repository"
	"pasar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
//
// Each method issues a single statement. The order workflow never wraps
// these in a shared transaction, so a failure between the header insert and
// the item inserts leaves the header in place.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order header without its associations.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindBySellerKey retrieves all orders placed against a seller key, joined
// with their items and payment.
func (repo *orderRepository) FindBySellerKey(ctx context.Context, sellerKey string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("seller_key = ?", sellerKey).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by seller key")
	}

	return toOrderDomainList(orderModels), nil
}

// FindByCustomerID retrieves all orders placed by a customer, joined with
// their items and payment.
func (repo *orderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomainList(orderModels), nil
}

// Create persists a new order header.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateItem persists a single order line.
func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := &model.OrderItemModel{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		OrderID:   item.OrderID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// UpdateStatus overwrites the order status unconditionally.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("order_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a persistence model to a domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:          orderM.ID,
		OrderNumber: orderM.OrderNumber,
		OrderStatus: orderM.OrderStatus,
		TotalAmount: orderM.TotalAmount,
		CustomerID:  orderM.CustomerID,
		SellerKey:   orderM.SellerKey,
		CreatedAt:   orderM.CreatedAt,
		UpdatedAt:   orderM.UpdatedAt,
	}

	for _, itemM := range orderM.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        itemM.ID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			OrderID:   itemM.OrderID,
			CreatedAt: itemM.CreatedAt,
		})
	}

	if orderM.Payment != nil {
		order.Payment = toPaymentDomain(orderM.Payment)
	}

	return order
}

func toOrderDomainList(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain entity to a persistence model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		OrderStatus: order.OrderStatus,
		TotalAmount: order.TotalAmount,
		CustomerID:  order.CustomerID,
		SellerKey:   order.SellerKey,
	}
}
