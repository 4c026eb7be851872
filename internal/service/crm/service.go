// Package crm owns the client relationship ledger: per-client work logs
// and the running earnings aggregate derived from them.
package crm

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// Service errors
var (
	ErrClientNotFound = errors.New("client not found")
	ErrLogNotFound    = errors.New("client log not found")
)

// ClientParams for creating or updating a client record. Ledger state
// (logs, earnings) is never caller-supplied.
type ClientParams struct {
	Name         string
	Address      string
	Zone         string
	UsualService string
	IsRegular    bool
	LastPrice    float64
}

// LogParams for appending a ledger entry.
type LogParams struct {
	Date        string
	Description string
	Hours       float64
	Amount      float64
	Status      entity.LogStatus
}

// PendingLog is a ledger entry awaiting payment, flattened with its
// client's display fields for the agenda view.
type PendingLog struct {
	ClientID   string
	ClientName string
	Zone       string
	Log        entity.ClientLog
}

// Service mutates clients through the access gate and derives ledger
// views from the client mirror.
type Service struct {
	hub  *store.Hub
	gate *session.Gate
}

// NewService creates a crm service.
func NewService(hub *store.Hub, gate *session.Gate) *Service {
	return &Service{hub: hub, gate: gate}
}

// List returns the mirrored clients in arrival order.
func (s *Service) List() []entity.Client {
	return s.hub.Clients.Items()
}

// Get returns one client from the mirror.
func (s *Service) Get(id string) (entity.Client, error) {
	c, ok := s.hub.Clients.Find(func(c entity.Client) bool { return c.ID == id })
	if !ok {
		return entity.Client{}, ErrClientNotFound
	}
	return c, nil
}

// Add creates a client with an empty ledger.
func (s *Service) Add(ctx context.Context, sess *session.Session, params ClientParams) (entity.Client, error) {
	c := entity.Client{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Address:      params.Address,
		Zone:         params.Zone,
		UsualService: params.UsualService,
		IsRegular:    params.IsRegular,
		LastPrice:    params.LastPrice,
	}
	if err := s.gate.Set(ctx, sess, store.ColClients, c.ID, c); err != nil {
		return entity.Client{}, err
	}
	return c, nil
}

// Update replaces a client's non-ledger fields. Logs and TotalEarnings
// are carried over from the current record; an update can never discard
// logs or inject a caller-supplied earnings value.
func (s *Service) Update(ctx context.Context, sess *session.Session, id string, params ClientParams) (entity.Client, error) {
	current, err := s.Get(id)
	if err != nil {
		return entity.Client{}, err
	}

	updated := entity.Client{
		ID:            id,
		Name:          params.Name,
		Address:       params.Address,
		Zone:          params.Zone,
		UsualService:  params.UsualService,
		IsRegular:     params.IsRegular,
		LastPrice:     params.LastPrice,
		Logs:          current.Logs,
		TotalEarnings: current.TotalEarnings,
	}
	if err := s.gate.Set(ctx, sess, store.ColClients, id, updated); err != nil {
		return entity.Client{}, err
	}
	return updated, nil
}

// Delete removes a client and with it the ledger it owns.
func (s *Service) Delete(ctx context.Context, sess *session.Session, id string) error {
	return s.gate.Delete(ctx, sess, store.ColClients, id)
}

// AddLog appends a ledger entry. A paid entry bumps TotalEarnings by its
// amount; any positive amount becomes the client's last known price.
func (s *Service) AddLog(ctx context.Context, sess *session.Session, clientID string, params LogParams) (entity.ClientLog, error) {
	client, err := s.Get(clientID)
	if err != nil {
		return entity.ClientLog{}, err
	}

	log := entity.ClientLog{
		ID:          uuid.NewString(),
		Date:        params.Date,
		Description: params.Description,
		Hours:       params.Hours,
		Amount:      params.Amount,
		Status:      params.Status,
	}

	// Newest first. Copy, never mutate the mirrored slice.
	logs := make([]entity.ClientLog, 0, len(client.Logs)+1)
	logs = append(logs, log)
	logs = append(logs, client.Logs...)
	client.Logs = logs

	if log.Status == entity.LogPaid {
		client.TotalEarnings += log.Amount
	}
	if log.Amount > 0 {
		client.LastPrice = log.Amount
	}

	if err := s.gate.Set(ctx, sess, store.ColClients, clientID, client); err != nil {
		return entity.ClientLog{}, err
	}
	return log, nil
}

// SetLogStatus transitions a ledger entry and applies the signed delta to
// TotalEarnings: +amount for pending->paid, -amount for paid->pending,
// zero otherwise (setting the same status is a no-op delta). A miss on
// either id changes nothing.
func (s *Service) SetLogStatus(ctx context.Context, sess *session.Session, clientID, logID string, status entity.LogStatus) error {
	client, err := s.Get(clientID)
	if err != nil {
		return err
	}

	idx := -1
	for i, l := range client.Logs {
		if l.ID == logID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrLogNotFound
	}

	logs := make([]entity.ClientLog, len(client.Logs))
	copy(logs, client.Logs)

	var delta float64
	switch {
	case logs[idx].Status == entity.LogPending && status == entity.LogPaid:
		delta = logs[idx].Amount
	case logs[idx].Status == entity.LogPaid && status == entity.LogPending:
		delta = -logs[idx].Amount
	}
	logs[idx].Status = status

	client.Logs = logs
	client.TotalEarnings += delta
	return s.gate.Set(ctx, sess, store.ColClients, clientID, client)
}

// RecomputeEarnings recalculates the paid total from scratch. It is the
// reconciliation check for the incrementally maintained aggregate and
// must agree with it.
func RecomputeEarnings(c entity.Client) float64 {
	var total float64
	for _, l := range c.Logs {
		if l.Status == entity.LogPaid {
			total += l.Amount
		}
	}
	return total
}

// PendingAgenda flattens every client's pending logs with the client's
// display name and zone, sorted ascending by log date. Equal dates keep
// collection order.
func (s *Service) PendingAgenda() []PendingLog {
	var out []PendingLog
	for _, c := range s.hub.Clients.Items() {
		for _, l := range c.Logs {
			if l.Status == entity.LogPending {
				out = append(out, PendingLog{
					ClientID:   c.ID,
					ClientName: c.Name,
					Zone:       c.Zone,
					Log:        l,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Log.Date < out[j].Log.Date
	})
	return out
}
