package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/plussdev/portfolio-backend/internal/api/http"
	"github.com/plussdev/portfolio-backend/internal/auth"
	authhttp "github.com/plussdev/portfolio-backend/internal/auth/http"
	"github.com/plussdev/portfolio-backend/internal/auth/middleware"
	"github.com/plussdev/portfolio-backend/internal/contact"
	"github.com/plussdev/portfolio-backend/internal/content"
	"github.com/plussdev/portfolio-backend/internal/i18n"
	"github.com/plussdev/portfolio-backend/internal/kv"
	porthttp "github.com/plussdev/portfolio-backend/internal/portfolio/http"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
	"github.com/plussdev/portfolio-backend/internal/portfolio/service"
	"github.com/plussdev/portfolio-backend/internal/prefs"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	StoreBackend string
	CORSOrigins  []string
	AdminEmail   string

	AuthClient *fbauth.Client
	Store      repository.CardStore
	Mirror     *service.Mirror
	Prefs      kv.Store
	DB         *sql.DB       // optional, contact messages
	Redis      *redis.Client // optional, health reporting
	Log        *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StoreBackend, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	editor := service.NewEditor(dep.Store, dep.Log)
	reorderer := service.NewReorderer(dep.Store, dep.Log)
	portfolioHandler := porthttp.NewHandler(dep.Mirror, editor, reorderer, dep.Log)

	var contactRepo *contact.MessageRepository
	if dep.DB != nil {
		contactRepo = contact.NewMessageRepository(dep.DB)
	}
	contactHandler := contact.NewHandler(contactRepo, dep.Log)

	api := r.Group("/api/v1")

	portfolioHandler.RegisterPublic(api)
	i18n.Register(api)
	content.Register(api)
	contactHandler.RegisterPublic(api)

	admin := api.Group("/admin")
	admin.Use(middleware.FirebaseAuthMiddleware(dep.AuthClient))
	admin.Use(auth.Gate(dep.AuthClient, dep.AdminEmail, dep.Log))

	authhttp.Register(admin)
	portfolioHandler.RegisterAdmin(admin)
	contactHandler.RegisterAdmin(admin)
	prefs.NewHandler(dep.Prefs, dep.Log).Register(admin)

	return r
}
