package searchapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lixenwraith/astar-grid/cache"
	"github.com/lixenwraith/astar-grid/navigation"
)

const cacheTimeout = 100 * time.Millisecond

// SearchController runs searches and caches their results.
type SearchController struct {
	cache    cache.ResultCache
	maxCells int
}

// NewSearchController initializes a SearchController.
// A nil cache disables caching; maxCells bounds rows * columns per request.
func NewSearchController(c cache.ResultCache, maxCells int) *SearchController {
	return &SearchController{
		cache:    c,
		maxCells: maxCells,
	}
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/search", sc.search)
	route.GET("/health", sc.health)
}

func (sc *SearchController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// search handles one search request.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Rows > 0 && request.Columns > 0 && request.Columns > sc.maxCells/request.Rows {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "grid exceeds the cell limit"})
		return
	}

	request = request.normalized()
	key, err := cache.Key(request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while hashing request"})
		return
	}

	if res, ok := sc.lookup(ctx, key); ok {
		ctx.JSON(http.StatusOK, newResponse(res, true))
		return
	}

	g, err := request.grid()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	res, err := g.FindPath(request.AllowDiagonal)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	sc.store(ctx, key, res)
	ctx.JSON(http.StatusOK, newResponse(res, false))
}

// lookup treats cache failures as misses
func (sc *SearchController) lookup(ctx context.Context, key string) (navigation.Result, bool) {
	if sc.cache == nil {
		return navigation.Result{}, false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	res, ok, err := sc.cache.Get(timeoutCtx, key)
	if err != nil {
		log.Printf("[API] [WARN] cache lookup failed: %v", err)
		return navigation.Result{}, false
	}
	return res, ok
}

func (sc *SearchController) store(ctx context.Context, key string, res navigation.Result) {
	if sc.cache == nil {
		return
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := sc.cache.Set(timeoutCtx, key, res); err != nil {
		log.Printf("[API] [WARN] cache store failed: %v", err)
	}
}

// statusFor maps engine precondition errors to client errors
func statusFor(err error) int {
	switch {
	case errors.Is(err, navigation.ErrInvalidSize),
		errors.Is(err, navigation.ErrOutOfBounds),
		errors.Is(err, navigation.ErrMissingEndpoint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newResponse(res navigation.Result, cached bool) *SearchResponse {
	return &SearchResponse{
		ID:     uuid.New().String(),
		Found:  res.Found,
		Path:   toDTOs(res.Path),
		Trace:  toDTOs(res.Trace),
		Cached: cached,
	}
}
