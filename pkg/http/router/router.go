package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/navigatorx-junction/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/navigatorx-junction/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/navigatorx-junction/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/mailru/easygo/netpoll"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type API struct {
	log    *zap.Logger
	hub    *controllers.Hub
	poller netpoll.Poller
	sem    *semaphore.Weighted // websocket requests served at the same time
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler. httprouter + middleware chain, without starting a server
func (api *API) Handler(useRateLimit bool, intersectionService controllers.IntersectionService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	api.hub = controllers.NewHub(intersectionService, api.log)
	poller, err := netpoll.New(nil)
	if err != nil {
		api.log.Info("netpoll unavailable, websocket users get a reader goroutine each", zap.Error(err))
	} else {
		api.poller = poller
	}
	wsWorkers := viper.GetInt("WS_MAX_WORKERS")
	if wsWorkers <= 0 {
		wsWorkers = pkg.DEFAULT_WS_MAX_WORKERS
	}
	api.sem = semaphore.NewWeighted(int64(wsWorkers))
	router.GET("/ws", api.handleWebsocket)

	group := router_helper.NewRouteGroup(router, "/api")

	intersectionRoutes := controllers.New(intersectionService, api.log)

	intersectionRoutes.Routes(group)

	var mwChain []alice.Constructor
	if useRateLimit {
		mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
			RealIP, Heartbeat("healthz"), Logger(api.log), Labels, Limit)
	} else {
		mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
			RealIP, Heartbeat("healthz"), Logger(api.log), Labels)
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			Navigatorx Junction API
//	@version		1.0
//	@description	Intersection topology and turn legality engine for openstreetmap data.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	useRateLimit bool,
	intersectionService controllers.IntersectionService,
) error {
	log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(useRateLimit, intersectionService), config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		log.Info("HTTP server stopped", zap.Error(err))
		api.hub.RemoveAllUser()
		return err

	case <-ctx.Done():
		log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		api.hub.RemoveAllUser()
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
