package requests

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/entity"
	requestssvc "github.com/jardinverde/gardenia/internal/service/requests"
	"github.com/jardinverde/gardenia/internal/session"
)

// Register registers service-request endpoints.
func Register(api huma.API, svc *requestssvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-service-requests",
		Method:      http.MethodGet,
		Path:        "/service-requests",
		Summary:     "List service requests",
		Description: "Lists service requests, newest first.",
		Tags:        []string{"Requests"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		out := &ListOutput{}
		out.Body.Requests = toHTTPRequests(svc.List())
		out.Body.PendingCount = svc.PendingCount()
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "submit-service-request",
		Method:        http.MethodPost,
		Path:          "/service-requests",
		Summary:       "Submit a service request",
		Description:   "Records a new service request from the contact form.",
		Tags:          []string{"Requests"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *SubmitInput) (*RequestOutput, error) {
		req, err := svc.Submit(ctx, session.FromContext(ctx), requestssvc.SubmitParams{
			ClientName:  input.Body.ClientName,
			PhoneNumber: input.Body.PhoneNumber,
			HasWhatsapp: input.Body.HasWhatsapp,
			Zone:        input.Body.Zone,
			ServiceType: input.Body.ServiceType,
			Description: input.Body.Description,
		})
		if err != nil {
			return nil, mapRequestError(err)
		}
		return &RequestOutput{Body: toHTTPRequest(req)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "set-service-request-status",
		Method:        http.MethodPut,
		Path:          "/service-requests/{id}/status",
		Summary:       "Update service request status",
		Tags:          []string{"Requests"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *StatusInput) (*struct{}, error) {
		err := svc.SetStatus(ctx, session.FromContext(ctx), input.ID, entity.RequestStatus(input.Body.Status))
		if err != nil {
			return nil, mapRequestError(err)
		}
		return nil, nil
	})
}

func mapRequestError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, requestssvc.ErrNotFound):
		return huma.Error404NotFound("service request not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
