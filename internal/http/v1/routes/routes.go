package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/http/v1/account"
	"github.com/jardinverde/gardenia/internal/http/v1/advice"
	"github.com/jardinverde/gardenia/internal/http/v1/appointments"
	"github.com/jardinverde/gardenia/internal/http/v1/catalog"
	"github.com/jardinverde/gardenia/internal/http/v1/clients"
	"github.com/jardinverde/gardenia/internal/http/v1/images"
	"github.com/jardinverde/gardenia/internal/http/v1/requests"
	"github.com/jardinverde/gardenia/internal/http/v1/shop"
	advicesvc "github.com/jardinverde/gardenia/internal/service/advice"
	agendasvc "github.com/jardinverde/gardenia/internal/service/agenda"
	catalogsvc "github.com/jardinverde/gardenia/internal/service/catalog"
	crmsvc "github.com/jardinverde/gardenia/internal/service/crm"
	imagesvc "github.com/jardinverde/gardenia/internal/service/images"
	requestssvc "github.com/jardinverde/gardenia/internal/service/requests"
	shopsvc "github.com/jardinverde/gardenia/internal/service/shop"
	"github.com/jardinverde/gardenia/internal/session"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Sessions *session.Manager
	Catalog  *catalogsvc.Service
	Requests *requestssvc.Service
	Clients  *crmsvc.Service
	Agenda   *agendasvc.Service
	Carts    *shopsvc.CartStore
	Sales    *shopsvc.Recorder
	Advice   advicesvc.Service
	Uploader imagesvc.Uploader
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, deps Deps) {
	// Resolve bearer tokens to sessions for protected endpoints
	api.UseMiddleware(session.NewMiddleware(api, deps.Sessions))

	account.Register(api, deps.Sessions)
	catalog.Register(api, deps.Catalog)
	requests.Register(api, deps.Requests)
	clients.Register(api, deps.Clients)
	appointments.Register(api, deps.Agenda)
	shop.Register(api, deps.Carts, deps.Sales, deps.Catalog)
	advice.Register(api, deps.Advice, deps.Catalog)
	images.Register(api, deps.Uploader)
}
