package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/service"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/pkg/httpx"
	"github.com/aussiebroadwan/huddle/pkg/jwtx"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
	"github.com/redis/go-redis/v9"

	_ "github.com/aussiebroadwan/huddle/api/scheduler" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Cache is the redis client used for idempotency keys. *redis.Client
// satisfies it.
type Cache interface {
	httpx.IdempotencyStore
	Ping(ctx context.Context) *redis.StatusCmd
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	location     *time.Location
	logger       *slog.Logger
	store        store.Store

	// Cache enables Idempotency-Key handling on POST /v1/events. Optional.
	Cache          Cache
	IdempotencyTTL time.Duration

	Workflow         *service.SchedulingWorkflow
	EventStore       *service.EventStore
	DirectoryService *service.DirectoryService

	// Now is the clock used for draft defaults; tests pin it.
	Now func() time.Time
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	location *time.Location,
	logger *slog.Logger,
) *Router {
	if location == nil {
		location = time.UTC
	}
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		location:     location,
		store:        st,
		logger:       logger,
		Now:          time.Now,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerEvents()
	r.registerDirectory()
	r.registerSystem()

	r.Mux.Handle("/swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Huddle Scheduler API
//	@version		0.1.0
//	@description	Schedules events in shared household rooms and notifies the other attendees by push.
//	@description
//	@description				Requests are authenticated with EdDSA-signed access tokens issued by the BarTab auth service.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/huddle
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{
		Workflow:   r.Workflow,
		EventStore: r.EventStore,
		Directory:  r.DirectoryService,
		Location:   r.location,
		Now:        r.Now,
	}

	submit := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("events:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}
	if r.Cache != nil {
		submit = append(submit, httpx.Idempotency(httpx.IdempotencyConfig{
			Store: r.Cache,
			TTL:   r.IdempotencyTTL,
		}))
	}
	r.Mux.Handle("POST /v1/events", httpx.Chain(http.HandlerFunc(h.HandleSubmit), submit...))

	r.Mux.Handle("GET /v1/events/draft",
		httpx.Chain(http.HandlerFunc(h.HandleDraft),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("events:write"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("events:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/events/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("events:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDirectory() {
	h := &DirectoryHandler{Directory: r.DirectoryService}

	r.Mux.Handle("GET /v1/rooms",
		httpx.Chain(http.HandlerFunc(h.HandleRooms),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("events:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/people",
		httpx.Chain(http.HandlerFunc(h.HandlePeople),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("events:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PUT /v1/people/me/delivery-token",
		httpx.Chain(http.HandlerFunc(h.HandleDeliveryToken),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("profile:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	var cache Pinger
	if r.Cache != nil {
		cache = r.Cache
	}
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, cache),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
