package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory repository set with real transaction semantics:
// Execute holds a store-wide lock for the whole transaction and restores a
// snapshot when fn fails, so concurrent callers observe serialized, atomic writes.
type memoryStore struct {
	mu sync.Mutex

	state storeState

	// failures injects an error into the named repository method, e.g. "OrderRepo.UpdateNotes".
	failures map[string]error
	clock    time.Time

	// replica, when set, is the stale state that reads outside a transaction observe.
	replica *storeState
}

type storeState struct {
	users         map[uuid.UUID]entity.User
	products      map[uuid.UUID]entity.Product
	movements     []entity.StockMovement
	customers     map[uuid.UUID]entity.Customer
	orders        map[uuid.UUID]entity.Order
	counters      map[uuid.UUID]int64
	conversations map[uuid.UUID]entity.Conversation
	messages      []entity.Message
	connections   map[uuid.UUID]entity.SocialConnection
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		state: storeState{
			users:         map[uuid.UUID]entity.User{},
			products:      map[uuid.UUID]entity.Product{},
			customers:     map[uuid.UUID]entity.Customer{},
			orders:        map[uuid.UUID]entity.Order{},
			counters:      map[uuid.UUID]int64{},
			conversations: map[uuid.UUID]entity.Conversation{},
			connections:   map[uuid.UUID]entity.SocialConnection{},
		},
		failures: map[string]error{},
		clock:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s storeState) clone() storeState {
	orders := make(map[uuid.UUID]entity.Order, len(s.orders))
	for id, order := range s.orders {
		order.Items = slices.Clone(order.Items)
		orders[id] = order
	}

	return storeState{
		users:         maps.Clone(s.users),
		products:      maps.Clone(s.products),
		movements:     slices.Clone(s.movements),
		customers:     maps.Clone(s.customers),
		orders:        orders,
		counters:      maps.Clone(s.counters),
		conversations: maps.Clone(s.conversations),
		messages:      slices.Clone(s.messages),
		connections:   maps.Clone(s.connections),
	}
}

// failOn makes the named method return err until cleared.
func (s *memoryStore) failOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

func (s *memoryStore) injected(method string) error {
	return s.failures[method]
}

// now returns a timestamp that never moves backward. Every call inside one
// second shares the same value so ties on created_at are exercised.
func (s *memoryStore) now() time.Time {
	return s.clock
}

func (s *memoryStore) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = s.clock.Add(d)
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
		if err != nil {
			s.state = snapshot
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(memoryFactory{store: s})
}

// Direct repositories lock per call, like queries outside a transaction.
func (s *memoryStore) products() repository.ProductRepository {
	return memoryProducts{store: s, direct: true}
}

func (s *memoryStore) orders() repository.OrderRepository {
	return memoryOrders{store: s, direct: true}
}

func (s *memoryStore) run(direct bool, f func() error) error {
	if direct {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.replica != nil {
			primary := s.state
			s.state = *s.replica
			defer func() { s.state = primary }()
		}
	}

	return f()
}

// lagReplica freezes what direct reads return until the test ends.
func (s *memoryStore) lagReplica() {
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := s.state.clone()
	s.replica = &stale
}

// seedProduct stores a product whose stock is backed by an initial movement.
func (s *memoryStore) seedProduct(userID uuid.UUID, name string, stock int, purchase, selling int64) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := entity.Product{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		PurchasePrice: purchase,
		SellingPrice:  selling,
		StockQuantity: stock,
		CreatedAt:     s.clock,
		UpdatedAt:     s.clock,
	}
	s.state.products[product.ID] = product
	if stock != 0 {
		s.state.movements = append(s.state.movements, entity.StockMovement{
			ID:             uuid.Must(uuid.NewV7()),
			UserID:         userID,
			ProductID:      product.ID,
			ChangeQuantity: stock,
			Reason:         reasonInitialStock,
			Kind:           entity.MovementKindInitial,
			CreatedAt:      s.clock,
		})
	}

	return product
}

func (s *memoryStore) seedCustomer(userID uuid.UUID, name string) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := entity.Customer{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  name,
		Platform:  entity.PlatformManual,
		CreatedAt: s.clock,
		UpdatedAt: s.clock,
	}
	s.state.customers[customer.ID] = customer

	return customer
}

func (s *memoryStore) product(id uuid.UUID) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.products[id]
}

func (s *memoryStore) order(id uuid.UUID) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.state.orders[id]
	order.Items = slices.Clone(order.Items)

	return order
}

func (s *memoryStore) movementsOf(productID uuid.UUID) []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.StockMovement
	for _, m := range s.state.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}

	return out
}

func (s *memoryStore) ledgerSum(productID uuid.UUID) int {
	sum := 0
	for _, m := range s.movementsOf(productID) {
		sum += m.ChangeQuantity
	}

	return sum
}

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) ProductRepo() repository.ProductRepository {
	return memoryProducts{store: f.store}
}

func (f memoryFactory) StockMovementRepo() repository.StockMovementRepository {
	return memoryMovements{store: f.store}
}

func (f memoryFactory) CustomerRepo() repository.CustomerRepository {
	return memoryCustomers{store: f.store}
}

func (f memoryFactory) OrderRepo() repository.OrderRepository {
	return memoryOrders{store: f.store}
}

func (f memoryFactory) ConversationRepo() repository.ConversationRepository {
	return memoryConversations{store: f.store}
}

func (f memoryFactory) MessageRepo() repository.MessageRepository {
	return memoryMessages{store: f.store}
}

func (f memoryFactory) SocialConnectionRepo() repository.SocialConnectionRepository {
	return memoryConnections{store: f.store}
}

func (f memoryFactory) UserRepo() repository.UserRepository {
	return memoryUsers{store: f.store}
}

type memoryProducts struct {
	store  *memoryStore
	direct bool
}

func (r memoryProducts) Create(_ context.Context, product *entity.Product) error {
	return r.store.run(r.direct, func() error {
		if err := r.store.injected("ProductRepo.Create"); err != nil {
			return err
		}
		if product.ID == uuid.Nil {
			product.ID = uuid.New()
		}
		product.CreatedAt = r.store.now()
		product.UpdatedAt = product.CreatedAt
		r.store.state.products[product.ID] = *product

		return nil
	})
}

func (r memoryProducts) find(userID, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.store.state.products[id]
	if !ok || product.UserID != userID {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (r memoryProducts) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	var out *entity.Product
	err := r.store.run(r.direct, func() error {
		var err error
		out, err = r.find(userID, id)

		return err
	})

	return out, err
}

func (r memoryProducts) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	return r.FindByID(ctx, userID, id)
}

func (r memoryProducts) FindByIDsForUpdate(_ context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	out := make(map[uuid.UUID]*entity.Product, len(ids))
	err := r.store.run(r.direct, func() error {
		for _, id := range ids {
			product, err := r.find(userID, id)
			if err != nil {
				return err
			}
			out[id] = product
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r memoryProducts) List(_ context.Context, userID uuid.UUID, filter entity.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.store.run(r.direct, func() error {
		for _, p := range r.store.state.products {
			if p.UserID != userID || (p.IsArchived && !filter.IncludeArchived) {
				continue
			}
			if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
				continue
			}
			product := p
			out = append(out, &product)
		}
		slices.SortFunc(out, func(a, b *entity.Product) int { return strings.Compare(a.Name, b.Name) })

		return nil
	})

	return out, err
}

func (r memoryProducts) UpdateDetails(_ context.Context, product *entity.Product) error {
	return r.store.run(r.direct, func() error {
		current, ok := r.store.state.products[product.ID]
		if !ok || current.UserID != product.UserID {
			return repository.ErrProductNotFound
		}
		current.Name = product.Name
		current.Category = product.Category
		current.PurchasePrice = product.PurchasePrice
		current.SellingPrice = product.SellingPrice
		r.store.state.products[product.ID] = current

		return nil
	})
}

func (r memoryProducts) SetArchived(_ context.Context, userID, id uuid.UUID, archived bool) error {
	return r.store.run(r.direct, func() error {
		current, ok := r.store.state.products[id]
		if !ok || current.UserID != userID {
			return repository.ErrProductNotFound
		}
		current.IsArchived = archived
		r.store.state.products[id] = current

		return nil
	})
}

func (r memoryProducts) UpdateStockQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	return r.store.run(r.direct, func() error {
		if err := r.store.injected("ProductRepo.UpdateStockQuantity"); err != nil {
			return err
		}
		current, ok := r.store.state.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		current.StockQuantity = quantity
		r.store.state.products[id] = current

		return nil
	})
}

type memoryMovements struct {
	store  *memoryStore
	direct bool
}

func (r memoryMovements) Create(_ context.Context, movement *entity.StockMovement) error {
	return r.store.run(r.direct, func() error {
		if err := r.store.injected("StockMovementRepo.Create"); err != nil {
			return err
		}
		if movement.ChangeQuantity == 0 {
			return errors.New("change_quantity must not be zero")
		}
		if movement.ID == uuid.Nil {
			movement.ID = uuid.Must(uuid.NewV7())
		}
		movement.CreatedAt = r.store.now()
		r.store.state.movements = append(r.store.state.movements, *movement)

		return nil
	})
}

// newestFirst orders by (created_at, id) descending.
func newestFirst(a, b entity.StockMovement) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return strings.Compare(b.ID.String(), a.ID.String())
}

func (r memoryMovements) sorted(productID uuid.UUID) []entity.StockMovement {
	var out []entity.StockMovement
	for _, m := range r.store.state.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, newestFirst)

	return out
}

func (r memoryMovements) Latest(_ context.Context, productID uuid.UUID) (*entity.MovementCursor, error) {
	var out *entity.MovementCursor
	err := r.store.run(r.direct, func() error {
		if all := r.sorted(productID); len(all) > 0 {
			out = &entity.MovementCursor{CreatedAt: all[0].CreatedAt, ID: all[0].ID}
		}

		return nil
	})

	return out, err
}

func (r memoryMovements) ListBefore(
	_ context.Context,
	productID uuid.UUID,
	cursor entity.MovementCursor,
	inclusive bool,
	limit int,
) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.store.run(r.direct, func() error {
		at := entity.StockMovement{CreatedAt: cursor.CreatedAt, ID: cursor.ID}
		for _, m := range r.sorted(productID) {
			c := newestFirst(m, at)
			if c < 0 || (c == 0 && !inclusive) {
				continue
			}
			movement := m
			out = append(out, &movement)
			if len(out) == limit {
				break
			}
		}

		return nil
	})

	return out, err
}

func (r memoryMovements) SumByProduct(_ context.Context, productID uuid.UUID) (int, error) {
	sum := 0
	err := r.store.run(r.direct, func() error {
		for _, m := range r.store.state.movements {
			if m.ProductID == productID {
				sum += m.ChangeQuantity
			}
		}

		return nil
	})

	return sum, err
}

func (r memoryMovements) ListByOrder(_ context.Context, orderID uuid.UUID) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.store.run(r.direct, func() error {
		for _, m := range r.store.state.movements {
			if m.OrderID != nil && *m.OrderID == orderID {
				movement := m
				out = append(out, &movement)
			}
		}

		return nil
	})

	return out, err
}

type memoryCustomers struct {
	store *memoryStore
}

func (r memoryCustomers) Create(_ context.Context, customer *entity.Customer) error {
	for _, existing := range r.store.state.customers {
		if customer.PlatformUserID != nil && existing.PlatformUserID != nil &&
			existing.UserID == customer.UserID && existing.Platform == customer.Platform &&
			*existing.PlatformUserID == *customer.PlatformUserID {
			return repository.ErrDuplicateCustomer
		}
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = r.store.now()
	customer.UpdatedAt = customer.CreatedAt
	r.store.state.customers[customer.ID] = *customer

	return nil
}

func (r memoryCustomers) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.store.state.customers[id]
	if !ok || customer.UserID != userID {
		return nil, repository.ErrCustomerNotFound
	}

	return &customer, nil
}

func (r memoryCustomers) FindByPlatformUser(
	_ context.Context,
	userID uuid.UUID,
	platform entity.Platform,
	platformUserID string,
) (*entity.Customer, error) {
	for _, customer := range r.store.state.customers {
		if customer.UserID == userID && customer.Platform == platform &&
			customer.PlatformUserID != nil && *customer.PlatformUserID == platformUserID {
			return &customer, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r memoryCustomers) List(_ context.Context, userID uuid.UUID, filter entity.CustomerFilter) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.state.customers {
		if c.UserID == userID && (!c.IsArchived || filter.IncludeArchived) {
			customer := c
			out = append(out, &customer)
		}
	}

	return out, nil
}

func (r memoryCustomers) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := r.store.state.customers[customer.ID]; !ok {
		return repository.ErrCustomerNotFound
	}
	r.store.state.customers[customer.ID] = *customer

	return nil
}

func (r memoryCustomers) SetArchived(_ context.Context, userID, id uuid.UUID, archived bool) error {
	customer, ok := r.store.state.customers[id]
	if !ok || customer.UserID != userID {
		return repository.ErrCustomerNotFound
	}
	customer.IsArchived = archived
	r.store.state.customers[id] = customer

	return nil
}

type memoryOrders struct {
	store  *memoryStore
	direct bool
}

func (r memoryOrders) NextOrderNumber(_ context.Context, userID uuid.UUID) (int64, error) {
	var next int64
	err := r.store.run(r.direct, func() error {
		r.store.state.counters[userID]++
		next = r.store.state.counters[userID]

		return nil
	})

	return next, err
}

func (r memoryOrders) Create(_ context.Context, order *entity.Order) error {
	return r.store.run(r.direct, func() error {
		if err := r.store.injected("OrderRepo.Create"); err != nil {
			return err
		}
		if order.ID == uuid.Nil {
			order.ID = uuid.New()
		}
		for i := range order.Items {
			order.Items[i].ID = uuid.New()
			order.Items[i].OrderID = order.ID
		}
		order.CreatedAt = r.store.now()
		order.UpdatedAt = order.CreatedAt
		stored := *order
		stored.Items = slices.Clone(order.Items)
		r.store.state.orders[order.ID] = stored

		return nil
	})
}

func (r memoryOrders) find(userID, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.store.state.orders[id]
	if !ok || order.UserID != userID {
		return nil, repository.ErrOrderNotFound
	}
	order.Items = slices.Clone(order.Items)

	return &order, nil
}

func (r memoryOrders) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	var out *entity.Order
	err := r.store.run(r.direct, func() error {
		var err error
		out, err = r.find(userID, id)

		return err
	})

	return out, err
}

func (r memoryOrders) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	return r.FindByID(ctx, userID, id)
}

func (r memoryOrders) List(_ context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.store.run(r.direct, func() error {
		for id := range r.store.state.orders {
			order, _ := r.find(userID, id)
			if order == nil {
				continue
			}
			if filter.Status != nil && order.Status != *filter.Status {
				continue
			}
			if filter.CustomerID != nil && order.CustomerID != *filter.CustomerID {
				continue
			}
			out = append(out, order)
		}
		slices.SortFunc(out, func(a, b *entity.Order) int { return int(b.OrderNumber - a.OrderNumber) })

		return nil
	})

	return out, err
}

func (r memoryOrders) update(id uuid.UUID, method string, f func(*entity.Order)) error {
	return r.store.run(r.direct, func() error {
		if err := r.store.injected(method); err != nil {
			return err
		}
		order, ok := r.store.state.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		f(&order)
		order.UpdatedAt = r.store.now()
		r.store.state.orders[id] = order

		return nil
	})
}

func (r memoryOrders) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return r.update(id, "OrderRepo.UpdateStatus", func(o *entity.Order) { o.Status = status })
}

func (r memoryOrders) UpdateNotes(_ context.Context, id uuid.UUID, notes string) error {
	return r.update(id, "OrderRepo.UpdateNotes", func(o *entity.Order) { o.Notes = notes })
}

func (r memoryOrders) UpdateDetails(_ context.Context, order *entity.Order) error {
	return r.update(order.ID, "OrderRepo.UpdateDetails", func(o *entity.Order) {
		o.DeliveryService = order.DeliveryService
		o.TrackingNumber = order.TrackingNumber
		o.Notes = order.Notes
		o.TotalAmount = order.TotalAmount
	})
}

func (r memoryOrders) ReplaceItems(_ context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	return r.update(orderID, "OrderRepo.ReplaceItems", func(o *entity.Order) {
		replaced := make([]entity.OrderItem, len(items))
		for i, item := range items {
			item.ID = uuid.New()
			item.OrderID = orderID
			replaced[i] = item
		}
		o.Items = replaced
	})
}

func (r memoryOrders) ListBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.store.run(r.direct, func() error {
		for id, o := range r.store.state.orders {
			if o.UserID != userID || o.OrderDate.Before(from) || !o.OrderDate.Before(to) {
				continue
			}
			order, _ := r.find(userID, id)
			out = append(out, order)
		}

		return nil
	})

	return out, err
}

type memoryConversations struct {
	store *memoryStore
}

func (r memoryConversations) Upsert(_ context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	for id, existing := range r.store.state.conversations {
		if existing.UserID == conversation.UserID && existing.Platform == conversation.Platform &&
			existing.ParticipantPlatformID == conversation.ParticipantPlatformID {
			existing.PageID = conversation.PageID
			if existing.CustomerID == nil {
				existing.CustomerID = conversation.CustomerID
			}
			r.store.state.conversations[id] = existing

			return &existing, nil
		}
	}

	stored := *conversation
	stored.ID = uuid.New()
	stored.CreatedAt = r.store.now()
	r.store.state.conversations[stored.ID] = stored

	return &stored, nil
}

func (r memoryConversations) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Conversation, error) {
	conversation, ok := r.store.state.conversations[id]
	if !ok || conversation.UserID != userID {
		return nil, repository.ErrConversationNotFound
	}

	return &conversation, nil
}

func (r memoryConversations) List(_ context.Context, userID uuid.UUID, _, _ int) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, c := range r.store.state.conversations {
		if c.UserID == userID {
			conversation := c
			out = append(out, &conversation)
		}
	}

	return out, nil
}

func (r memoryConversations) Touch(_ context.Context, id uuid.UUID, at time.Time) error {
	conversation, ok := r.store.state.conversations[id]
	if !ok {
		return repository.ErrConversationNotFound
	}
	if at.After(conversation.LastMessageAt) {
		conversation.LastMessageAt = at
		r.store.state.conversations[id] = conversation
	}

	return nil
}

func (r memoryConversations) LinkCustomer(_ context.Context, id, customerID uuid.UUID) error {
	conversation, ok := r.store.state.conversations[id]
	if !ok {
		return repository.ErrConversationNotFound
	}
	conversation.CustomerID = &customerID
	r.store.state.conversations[id] = conversation

	return nil
}

type memoryMessages struct {
	store *memoryStore
}

func (r memoryMessages) Create(_ context.Context, message *entity.Message) error {
	for _, existing := range r.store.state.messages {
		if existing.PlatformMessageID == message.PlatformMessageID {
			return repository.ErrDuplicateMessage
		}
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	r.store.state.messages = append(r.store.state.messages, *message)

	return nil
}

func (r memoryMessages) ListByConversation(_ context.Context, conversationID uuid.UUID, _ int) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.store.state.messages {
		if m.ConversationID == conversationID {
			message := m
			out = append(out, &message)
		}
	}

	return out, nil
}

type memoryConnections struct {
	store *memoryStore
}

func (r memoryConnections) Upsert(_ context.Context, connection *entity.SocialConnection) error {
	for id, existing := range r.store.state.connections {
		if existing.UserID == connection.UserID && existing.Platform == connection.Platform {
			connection.ID = id
			r.store.state.connections[id] = *connection

			return nil
		}
	}
	connection.ID = uuid.New()
	r.store.state.connections[connection.ID] = *connection

	return nil
}

func (r memoryConnections) FindByUserAndPlatform(_ context.Context, userID uuid.UUID, platform entity.Platform) (*entity.SocialConnection, error) {
	for _, c := range r.store.state.connections {
		if c.UserID == userID && c.Platform == platform {
			return &c, nil
		}
	}

	return nil, repository.ErrConnectionNotFound
}

func (r memoryConnections) FindByPageID(_ context.Context, pageID string) (*entity.SocialConnection, error) {
	for _, c := range r.store.state.connections {
		if c.PageID == pageID || c.PlatformUserID == pageID {
			return &c, nil
		}
	}

	return nil, repository.ErrConnectionNotFound
}

func (r memoryConnections) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error) {
	var out []*entity.SocialConnection
	for _, c := range r.store.state.connections {
		if c.UserID == userID {
			connection := c
			out = append(out, &connection)
		}
	}

	return out, nil
}

type memoryUsers struct {
	store *memoryStore
}

func (r memoryUsers) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.state.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.store.state.users[user.ID] = *user

	return nil
}

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.state.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.state.users {
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}
