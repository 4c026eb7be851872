// Package requests handles service-request intake and follow-up status.
package requests

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/platform/timeutil"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// ErrNotFound indicates an unknown request id.
var ErrNotFound = errors.New("service request not found")

// SubmitParams is the contact-form payload.
type SubmitParams struct {
	ClientName  string
	PhoneNumber string
	HasWhatsapp bool
	Zone        string
	ServiceType string
	Description string
}

// Service owns the serviceRequests collection.
type Service struct {
	hub  *store.Hub
	gate *session.Gate
}

// NewService creates a requests service.
func NewService(hub *store.Hub, gate *session.Gate) *Service {
	return &Service{hub: hub, gate: gate}
}

// List returns the mirrored requests, newest submission first. Equal
// timestamps keep collection order.
func (s *Service) List() []entity.ServiceRequest {
	out := s.hub.Requests.Items()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// PendingCount reports how many requests still await contact.
func (s *Service) PendingCount() int {
	count := 0
	for _, r := range s.hub.Requests.Items() {
		if r.Status == entity.RequestPending {
			count++
		}
	}
	return count
}

// Submit records a new request with a pending status and the submission
// timestamp.
func (s *Service) Submit(ctx context.Context, sess *session.Session, params SubmitParams) (entity.ServiceRequest, error) {
	r := entity.ServiceRequest{
		ID:          uuid.NewString(),
		ClientName:  params.ClientName,
		PhoneNumber: params.PhoneNumber,
		HasWhatsapp: params.HasWhatsapp,
		Zone:        params.Zone,
		ServiceType: params.ServiceType,
		Description: params.Description,
		Date:        timeutil.NowStamp(),
		Status:      entity.RequestPending,
	}
	if err := s.gate.Set(ctx, sess, store.ColRequests, r.ID, r); err != nil {
		return entity.ServiceRequest{}, err
	}
	return r, nil
}

// SetStatus moves a request to the given status. Transitions are not
// restricted: moving contacted back to pending is allowed on purpose.
func (s *Service) SetStatus(ctx context.Context, sess *session.Session, id string, status entity.RequestStatus) error {
	r, ok := s.hub.Requests.Find(func(r entity.ServiceRequest) bool { return r.ID == id })
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	return s.gate.Set(ctx, sess, store.ColRequests, id, r)
}
