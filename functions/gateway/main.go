package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/handlers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/handlers/dynamodb_handlers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/transport"
)

type Route struct {
	Path    string
	Method  string
	Handler func(http.ResponseWriter, *http.Request) http.HandlerFunc
}

var Routes []Route

func init() {
	Routes = []Route{
		{"/api/activities", "GET", dynamodb_handlers.GetActivitiesHandler},
		{"/api/activities", "POST", dynamodb_handlers.CreateActivityHandler},
		{"/api/activities/search", "GET", handlers.SearchActivitiesHandler},
		{"/api/activities/suggest", "GET", handlers.SuggestActivitiesHandler},
		{"/api/activities/{" + helpers.ACTIVITY_ID_KEY + "}", "GET", dynamodb_handlers.GetActivityHandler},
		{"/api/activities/{" + helpers.ACTIVITY_ID_KEY + "}/participants", "GET", dynamodb_handlers.GetParticipantsByActivityIDHandler},
		{"/api/activities/{" + helpers.ACTIVITY_ID_KEY + "}/participants/{" + helpers.USER_ID_KEY + "}", "POST", dynamodb_handlers.RegisterParticipantHandler},
		{"/api/organizations", "POST", dynamodb_handlers.CreateOrganizationHandler},
		{"/api/organizations/{" + helpers.NGO_ID_KEY + "}", "GET", dynamodb_handlers.GetOrganizationHandler},
		{"/api/users/{" + helpers.USER_ID_KEY + "}/recent-searches", "GET", handlers.GetRecentSearchesHandler},
		{"/api/users/{" + helpers.USER_ID_KEY + "}/recent-searches", "POST", handlers.RecordRecentSearchHandler},
		{"/api/users/{" + helpers.USER_ID_KEY + "}/recent-searches", "DELETE", handlers.ClearRecentSearchesHandler},
	}
}

type App struct {
	Router *mux.Router
}

func NewApp() *App {
	app := &App{
		Router: mux.NewRouter(),
	}
	app.Router.Use(withContext)
	return app
}

func (app *App) SetupRoutes(routes []Route) {
	for _, route := range routes {
		app.addRoute(route)
	}
}

func (app *App) addRoute(route Route) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		route.Handler(w, r).ServeHTTP(w, r)
	}

	app.Router.HandleFunc(route.Path, handler).Methods(route.Method).Name(route.Method + " " + route.Path)
}

func (app *App) SetupNotFoundHandler() {
	app.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println("Not found", r.RequestURI)
		http.Error(w, fmt.Sprintf("Not found: %s", r.RequestURI), http.StatusNotFound)
	})
}

// Middleware to inject context into the request
func withContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, ok := ctx.Value(helpers.ApiGwV2ReqKey).(events.APIGatewayV2HTTPRequest); !ok {
			ctx = context.WithValue(ctx, helpers.ApiGwV2ReqKey, events.APIGatewayV2HTTPRequest{
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
						Method: r.Method,
						Path:   r.URL.Path,
					},
				},
			})
		}
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func main() {
	flag.Parse()
	app := NewApp()
	app.SetupNotFoundHandler()

	// This is the package level instance of Db in handlers
	_ = transport.GetDB()

	app.SetupRoutes(Routes)

	adapter := gorillamux.NewV2(app.Router)

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		ctx = context.WithValue(ctx, helpers.ApiGwV2ReqKey, request)
		return adapter.ProxyWithContext(ctx, request)
	})
}
