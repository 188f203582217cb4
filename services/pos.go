package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// Document keys of the persisted collections.
const (
	KeyMenu         = "restaurant-menu"
	KeyOrders       = "restaurant-orders"
	KeySettings     = "restaurant-settings"
	KeyDiscounts    = "restaurant-discounts"
	KeySalesRecords = "restaurant-daily-sales"
)

// Events published after successful mutations.
const (
	EventOrderCreated  = "order_created"
	EventOrderUpdated  = "order_updated"
	EventOrderDeleted  = "order_deleted"
	EventCartUpdated   = "cart_updated"
	EventSalesArchived = "sales_archived"
	EventStateImported = "state_imported"
)

// DocumentStore persists whole collections. Load reports false when the key
// has never been saved. SaveAll writes several keys all-or-nothing.
type DocumentStore interface {
	Save(ctx context.Context, key string, v interface{}) error
	SaveAll(ctx context.Context, docs map[string]interface{}) error
	Load(ctx context.Context, key string, v interface{}) (bool, error)
}

// Notifier receives events for screens that follow the order flow.
type Notifier interface {
	Notify(event string, data interface{})
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, interface{}) {}

type pendingEvent struct {
	name string
	data interface{}
}

// State holds every persisted collection. Orders are most recent first.
type State struct {
	Catalog      []models.CatalogItem
	Orders       []models.Order
	Discounts    []models.Discount
	Settings     models.Settings
	SalesRecords map[models.DateKey]models.DailySalesRecord
}

func emptyState() State {
	return State{
		Catalog:      []models.CatalogItem{},
		Orders:       []models.Order{},
		Discounts:    []models.Discount{},
		Settings:     models.DefaultSettings(),
		SalesRecords: map[models.DateKey]models.DailySalesRecord{},
	}
}

// POS owns the restaurant state and the cart. Every mutation runs the
// matching reducer, writes the changed collection to the store and only then
// replaces the in-memory copy, so memory and storage never diverge. One
// mutex makes it a single writer. Events raised under the lock are delivered
// once it is released.
type POS struct {
	mu       sync.Mutex
	store    DocumentStore
	state    State
	cart     *Cart
	ids      IDGenerator
	now      func() time.Time
	notifier Notifier

	pending  []pendingEvent
	notifyMu sync.Mutex
}

type Option func(*POS)

// WithClock sets the time source. Its location decides calendar days.
func WithClock(now func() time.Time) Option {
	return func(p *POS) { p.now = now }
}

func WithNotifier(n Notifier) Option {
	return func(p *POS) { p.notifier = n }
}

func NewPOS(store DocumentStore, opts ...Option) *POS {
	p := &POS{
		store:    store,
		state:    emptyState(),
		cart:     NewCart(),
		now:      time.Now,
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads every collection independently. An absent key starts empty; a
// malformed or unreadable one is logged and also starts empty, without
// affecting the others. The returned error lists what was skipped.
func (p *POS) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := emptyState()
	var errs []error
	load := func(key string, v interface{}) bool {
		found, err := p.store.Load(ctx, key, v)
		if err != nil {
			utils.ErrorLogger.WithField("key", key).Warnf("Ignoring stored collection: %v", err)
			errs = append(errs, fmt.Errorf("load %s: %w", key, err))
			return false
		}
		return found
	}

	var catalog []models.CatalogItem
	if load(KeyMenu, &catalog) && catalog != nil {
		st.Catalog = catalog
	}
	var orders []models.Order
	if load(KeyOrders, &orders) && orders != nil {
		st.Orders = orders
	}
	var discounts []models.Discount
	if load(KeyDiscounts, &discounts) && discounts != nil {
		st.Discounts = discounts
	}
	var records map[models.DateKey]models.DailySalesRecord
	if load(KeySalesRecords, &records) && records != nil {
		st.SalesRecords = records
	}
	settings := models.DefaultSettings()
	if load(KeySettings, &settings) {
		st.Settings = settings
	}

	p.state = st
	p.observeIDs()
	utils.InfoLogger.Printf("Loaded %d menu items, %d orders, %d discounts, %d archived days",
		len(st.Catalog), len(st.Orders), len(st.Discounts), len(st.SalesRecords))
	return errors.Join(errs...)
}

func (p *POS) observeIDs() {
	for _, it := range p.state.Catalog {
		p.ids.Observe(it.ID)
	}
	for _, o := range p.state.Orders {
		p.ids.Observe(o.ID)
	}
	for _, d := range p.state.Discounts {
		p.ids.Observe(d.ID)
	}
}

// emit queues an event; p.mu must be held.
func (p *POS) emit(event string, data interface{}) {
	p.pending = append(p.pending, pendingEvent{name: event, data: data})
}

// unlock releases p.mu and then delivers the queued events. notifyMu is
// taken before p.mu is released so events keep their commit order.
func (p *POS) unlock() {
	events := p.pending
	p.pending = nil
	if len(events) == 0 {
		p.mu.Unlock()
		return
	}
	p.notifyMu.Lock()
	p.mu.Unlock()
	defer p.notifyMu.Unlock()
	for _, e := range events {
		p.notifier.Notify(e.name, e.data)
	}
}

func (p *POS) persist(ctx context.Context, key string, v interface{}) error {
	if err := p.store.Save(ctx, key, v); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *POS) persistAll(ctx context.Context, docs map[string]interface{}) error {
	if err := p.store.SaveAll(ctx, docs); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (p *POS) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *POS) snapshotLocked() State {
	st := State{
		Catalog:      append([]models.CatalogItem(nil), p.state.Catalog...),
		Orders:       append([]models.Order(nil), p.state.Orders...),
		Discounts:    append([]models.Discount(nil), p.state.Discounts...),
		Settings:     p.state.Settings,
		SalesRecords: make(map[models.DateKey]models.DailySalesRecord, len(p.state.SalesRecords)),
	}
	for k, v := range p.state.SalesRecords {
		st.SalesRecords[k] = v
	}
	return st
}

/*
========================================
 CATALOG
========================================
*/

// MenuEntry is a catalog item with its price right now.
type MenuEntry struct {
	models.CatalogItem
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	HasDiscount    bool            `json:"hasDiscount"`
}

// Menu lists the catalog priced at the current instant. Items of the limited
// menu are hidden while it is switched off.
func (p *POS) Menu() []MenuEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	out := make([]MenuEntry, 0, len(p.state.Catalog))
	for _, it := range p.state.Catalog {
		if it.Category == models.SpecialMenuCategory && !p.state.Settings.ShowLimitedMenu {
			continue
		}
		price := ResolvePrice(it, p.state.Discounts, now)
		out = append(out, MenuEntry{
			CatalogItem:    it,
			EffectivePrice: price,
			HasDiscount:    price.LessThan(it.BasePrice),
		})
	}
	return out
}

func (p *POS) Item(id int64) (models.CatalogItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx := findItem(p.state.Catalog, id); idx >= 0 {
		return p.state.Catalog[idx], true
	}
	return models.CatalogItem{}, false
}

func (p *POS) AddItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item.ID = p.ids.Next(p.now())
	catalog, err := AddItem(p.state.Catalog, item)
	if err != nil {
		return models.CatalogItem{}, err
	}
	if err := p.persist(ctx, KeyMenu, catalog); err != nil {
		return models.CatalogItem{}, err
	}
	p.state.Catalog = catalog
	return catalog[len(catalog)-1], nil
}

func (p *POS) UpdateItem(ctx context.Context, item models.CatalogItem) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	catalog, ok, err := UpdateItem(p.state.Catalog, item)
	if err != nil || !ok {
		return false, err
	}
	return true, p.commitCatalog(ctx, catalog)
}

func (p *POS) DeleteItem(ctx context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	catalog, ok := DeleteItem(p.state.Catalog, id)
	if !ok {
		return false, nil
	}
	return true, p.commitCatalog(ctx, catalog)
}

func (p *POS) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	catalog, ok := ToggleFavorite(p.state.Catalog, id)
	if !ok {
		return false, nil
	}
	return true, p.commitCatalog(ctx, catalog)
}

func (p *POS) MoveItem(ctx context.Context, category string, index int, dir MoveDirection) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	catalog, ok := MoveItem(p.state.Catalog, category, index, dir)
	if !ok {
		return false, nil
	}
	return true, p.commitCatalog(ctx, catalog)
}

func (p *POS) commitCatalog(ctx context.Context, catalog []models.CatalogItem) error {
	if err := p.persist(ctx, KeyMenu, catalog); err != nil {
		return err
	}
	p.state.Catalog = catalog
	return nil
}

/*
========================================
 CART
========================================
*/

type CartMode string

const (
	CartDelta CartMode = "delta"
	CartSet   CartMode = "set"
)

type CartLineView struct {
	Item      models.CatalogItem `json:"item"`
	Quantity  int                `json:"quantity"`
	UnitPrice decimal.Decimal    `json:"unitPrice"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
}

type CartView struct {
	Lines     []CartLineView  `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func (p *POS) cartViewLocked() CartView {
	now := p.now()
	view := CartView{
		Lines:     make([]CartLineView, 0),
		Total:     p.cart.Total(p.state.Discounts, now),
		ItemCount: p.cart.ItemCount(),
	}
	for _, l := range p.cart.Lines() {
		price := ResolvePrice(l.Item, p.state.Discounts, now)
		view.Lines = append(view.Lines, CartLineView{
			Item:      l.Item,
			Quantity:  l.Quantity,
			UnitPrice: price,
			Subtotal:  price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return view
}

func (p *POS) Cart() CartView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cartViewLocked()
}

// UpdateCart applies a quantity change for a catalog item. It reports false
// when the item is neither on the menu nor already in the cart.
func (p *POS) UpdateCart(itemID int64, qty int, mode CartMode) (CartView, bool) {
	p.mu.Lock()
	defer p.unlock()

	var item models.CatalogItem
	if idx := findItem(p.state.Catalog, itemID); idx >= 0 {
		item = p.state.Catalog[idx]
	} else if line, ok := p.cart.Line(itemID); ok {
		item = line.Item
	} else {
		return p.cartViewLocked(), false
	}

	if mode == CartSet {
		p.cart.SetQuantity(item, qty)
	} else {
		p.cart.AdjustQuantity(item, qty)
	}
	view := p.cartViewLocked()
	p.emit(EventCartUpdated, view)
	return view, true
}

func (p *POS) RemoveFromCart(itemID int64) CartView {
	p.mu.Lock()
	defer p.unlock()

	p.cart.Remove(itemID)
	view := p.cartViewLocked()
	p.emit(EventCartUpdated, view)
	return view
}

func (p *POS) ClearCart() CartView {
	p.mu.Lock()
	defer p.unlock()

	p.cart.Clear()
	view := p.cartViewLocked()
	p.emit(EventCartUpdated, view)
	return view
}

/*
========================================
 ORDERS
========================================
*/

// Checkout turns the cart into an order, prepends it to the history and
// clears the cart. Lines are refreshed from the live catalog first, so an
// item edited while in the cart is charged at its current price.
func (p *POS) Checkout(ctx context.Context, req CheckoutRequest) (models.Order, error) {
	p.mu.Lock()
	defer p.unlock()

	lines := p.cart.Lines()
	for i, l := range lines {
		if idx := findItem(p.state.Catalog, l.Item.ID); idx >= 0 {
			lines[i].Item = p.state.Catalog[idx]
		}
	}

	now := p.now()
	order, err := Checkout(lines, p.state.Discounts, req, p.ids.Next(now), now)
	if err != nil {
		return models.Order{}, err
	}

	orders := make([]models.Order, 0, len(p.state.Orders)+1)
	orders = append(orders, order)
	orders = append(orders, p.state.Orders...)
	if err := p.persist(ctx, KeyOrders, orders); err != nil {
		return models.Order{}, err
	}
	p.state.Orders = orders
	p.cart.Clear()

	if !order.PaymentMethod.IsKnown() || !order.OrderSource.IsKnown() || !order.OrderType.IsKnown() {
		utils.InfoLogger.Warnf("Order %d uses an unrecognized label: payment=%s source=%s type=%s",
			order.ID, order.PaymentMethod, order.OrderSource, order.OrderType)
	}
	utils.InfoLogger.WithFields(map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total.StringFixed(2),
		"payment":  order.PaymentMethod,
	}).Info("Order checked out")
	p.emit(EventOrderCreated, order)
	p.emit(EventCartUpdated, p.cartViewLocked())
	return order, nil
}

func (p *POS) Orders(f OrderFilter) []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return FilterOrders(p.state.Orders, f)
}

func (p *POS) OrderDates() []models.DateKey {
	p.mu.Lock()
	defer p.mu.Unlock()
	return AvailableDates(p.state.Orders)
}

func (p *POS) Order(id int64) (models.Order, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx := findOrder(p.state.Orders, id); idx >= 0 {
		return p.state.Orders[idx], true
	}
	return models.Order{}, false
}

func (p *POS) ToggleOrderStatus(ctx context.Context, id int64) (models.Order, bool, error) {
	p.mu.Lock()
	defer p.unlock()

	orders, ok := ToggleStatus(p.state.Orders, id)
	if !ok {
		return models.Order{}, false, nil
	}
	return p.commitOrderUpdate(ctx, orders, id)
}

func (p *POS) UpdateOrderLine(ctx context.Context, orderID, itemID int64, qty int) (models.Order, bool, error) {
	p.mu.Lock()
	defer p.unlock()

	orders, ok := UpdateLineQuantity(p.state.Orders, orderID, itemID, qty)
	if !ok {
		return models.Order{}, false, nil
	}
	return p.commitOrderUpdate(ctx, orders, orderID)
}

func (p *POS) commitOrderUpdate(ctx context.Context, orders []models.Order, id int64) (models.Order, bool, error) {
	if err := p.persist(ctx, KeyOrders, orders); err != nil {
		return models.Order{}, false, err
	}
	p.state.Orders = orders
	order := orders[findOrder(orders, id)]
	p.emit(EventOrderUpdated, order)
	return order, true, nil
}

func (p *POS) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.unlock()

	orders, ok := DeleteOrder(p.state.Orders, id)
	if !ok {
		return false, nil
	}
	if err := p.persist(ctx, KeyOrders, orders); err != nil {
		return false, err
	}
	p.state.Orders = orders
	p.emit(EventOrderDeleted, map[string]int64{"id": id})
	return true, nil
}

/*
========================================
 DISCOUNTS
========================================
*/

func (p *POS) Discounts() []models.Discount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Discount{}, p.state.Discounts...)
}

// AddDiscount registers d, active, under a fresh id.
func (p *POS) AddDiscount(ctx context.Context, d models.Discount) (models.Discount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	d.ID = p.ids.Next(p.now())
	d.Active = true
	discounts, err := AddDiscount(p.state.Discounts, p.state.Catalog, d)
	if err != nil {
		return models.Discount{}, err
	}
	if err := p.persist(ctx, KeyDiscounts, discounts); err != nil {
		return models.Discount{}, err
	}
	p.state.Discounts = discounts
	return d, nil
}

func (p *POS) ToggleDiscount(ctx context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	discounts, ok := ToggleDiscount(p.state.Discounts, id)
	if !ok {
		return false, nil
	}
	if err := p.persist(ctx, KeyDiscounts, discounts); err != nil {
		return false, err
	}
	p.state.Discounts = discounts
	return true, nil
}

func (p *POS) DeleteDiscount(ctx context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	discounts, ok := DeleteDiscount(p.state.Discounts, id)
	if !ok {
		return false, nil
	}
	if err := p.persist(ctx, KeyDiscounts, discounts); err != nil {
		return false, err
	}
	p.state.Discounts = discounts
	return true, nil
}

/*
========================================
 SETTINGS
========================================
*/

func (p *POS) Settings() models.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Settings
}

func validateSettings(s models.Settings) error {
	if s.DailyVehicleCost.IsNegative() || s.PerDeliveryCost.IsNegative() {
		return newValidationError("delivery costs cannot be negative")
	}
	return nil
}

// SaveSettings stores s. Switching the limited menu off drops the items of
// the limited menu category, in the same write as the settings.
func (p *POS) SaveSettings(ctx context.Context, s models.Settings) error {
	if err := validateSettings(s); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Settings.ShowLimitedMenu && !s.ShowLimitedMenu {
		if catalog, ok := PurgeCategory(p.state.Catalog, models.SpecialMenuCategory); ok {
			if err := p.persistAll(ctx, map[string]interface{}{
				KeySettings: s,
				KeyMenu:     catalog,
			}); err != nil {
				return err
			}
			p.state.Catalog = catalog
			p.state.Settings = s
			return nil
		}
	}
	if err := p.persist(ctx, KeySettings, s); err != nil {
		return err
	}
	p.state.Settings = s
	return nil
}

/*
========================================
 SALES
========================================
*/

// Sales aggregates dateKey live, against the current settings.
func (p *POS) Sales(dateKey models.DateKey) models.DailySalesRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Aggregate(p.state.Orders, p.state.Settings, dateKey)
}

// Today is the calendar day of the POS clock.
func (p *POS) Today() models.DateKey {
	return models.DateKeyOf(p.now())
}

// ArchivedSales returns the saved record of dateKey, if any.
func (p *POS) ArchivedSales(dateKey models.DateKey) (models.DailySalesRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.state.SalesRecords[dateKey]
	return rec, ok
}

// ArchiveSales saves the current aggregate of dateKey, replacing an older
// snapshot of the same day.
func (p *POS) ArchiveSales(ctx context.Context, dateKey models.DateKey) (models.DailySalesRecord, error) {
	p.mu.Lock()
	defer p.unlock()

	rec := ArchiveDay(p.state.Orders, p.state.Settings, dateKey, p.now())
	records := p.copyRecordsLocked()
	records[dateKey] = rec
	if err := p.persist(ctx, KeySalesRecords, records); err != nil {
		return models.DailySalesRecord{}, err
	}
	p.state.SalesRecords = records
	p.emit(EventSalesArchived, rec)
	return rec, nil
}

// ArchivePastDays archives every day before today that has orders and no
// saved record yet. It returns how many days were archived.
func (p *POS) ArchivePastDays(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.unlock()

	now := p.now()
	today := models.DateKeyOf(now)
	records := p.copyRecordsLocked()
	archived := make([]models.DailySalesRecord, 0)
	for _, d := range AvailableDates(p.state.Orders) {
		if d >= today {
			continue
		}
		if _, ok := records[d]; ok {
			continue
		}
		rec := ArchiveDay(p.state.Orders, p.state.Settings, d, now)
		records[d] = rec
		archived = append(archived, rec)
	}
	if len(archived) == 0 {
		return 0, nil
	}
	if err := p.persist(ctx, KeySalesRecords, records); err != nil {
		return 0, err
	}
	p.state.SalesRecords = records
	for _, rec := range archived {
		p.emit(EventSalesArchived, rec)
	}
	return len(archived), nil
}

func (p *POS) SalesHistory() []models.DailySalesRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return History(p.state.Orders, p.state.Settings, p.state.SalesRecords)
}

func (p *POS) copyRecordsLocked() map[models.DateKey]models.DailySalesRecord {
	records := make(map[models.DateKey]models.DailySalesRecord, len(p.state.SalesRecords)+1)
	for k, v := range p.state.SalesRecords {
		records[k] = v
	}
	return records
}

/*
========================================
 BACKUP
========================================
*/

func (p *POS) Export() models.Backup {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := p.snapshotLocked()
	return models.Backup{
		MenuItems:         st.Catalog,
		CompletedOrders:   st.Orders,
		Settings:          &st.Settings,
		Discounts:         st.Discounts,
		DailySalesRecords: st.SalesRecords,
		Version:           models.BackupVersion,
	}
}

// ImportDocument decodes a raw export, upgrading 1.x files, and imports it.
// An unreadable document is a validation error.
func (p *POS) ImportDocument(ctx context.Context, data []byte) error {
	now := p.now()
	b, err := DecodeBackup(data, now.Location(), now)
	if err != nil {
		return newValidationError("invalid backup: " + err.Error())
	}
	return p.Import(ctx, b)
}

// Import replaces the whole state with b in one all-or-nothing write.
// Missing collections become empty and missing settings fall back to the
// defaults; nothing is merged. The cart is left alone.
func (p *POS) Import(ctx context.Context, b models.Backup) error {
	st := emptyState()
	if b.MenuItems != nil {
		st.Catalog = b.MenuItems
	}
	if b.CompletedOrders != nil {
		st.Orders = b.CompletedOrders
	}
	if b.Discounts != nil {
		st.Discounts = b.Discounts
	}
	if b.DailySalesRecords != nil {
		st.SalesRecords = b.DailySalesRecords
	}
	if b.Settings != nil {
		st.Settings = *b.Settings
	}

	if err := validateSettings(st.Settings); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.unlock()

	if err := p.persistAll(ctx, map[string]interface{}{
		KeyMenu:         st.Catalog,
		KeyOrders:       st.Orders,
		KeySettings:     st.Settings,
		KeyDiscounts:    st.Discounts,
		KeySalesRecords: st.SalesRecords,
	}); err != nil {
		return err
	}

	p.state = st
	p.observeIDs()
	utils.InfoLogger.Printf("Imported backup version %q: %d menu items, %d orders", b.Version, len(st.Catalog), len(st.Orders))
	p.emit(EventStateImported, map[string]int{
		"menuItems": len(st.Catalog),
		"orders":    len(st.Orders),
		"discounts": len(st.Discounts),
	})
	return nil
}
