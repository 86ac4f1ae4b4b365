package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/huyndao/mazegen/export"
	"github.com/huyndao/mazegen/maze"
	"github.com/huyndao/mazegen/service"
	"github.com/huyndao/mazegen/service/i"
)

// MazeController serves maze generation and the three export formats.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{mazeService: ms}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:ID", mc.document)
		mazes.GET("/:ID/ascii", mc.ascii)
		mazes.GET("/:ID/svg", mc.svg)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buildReq := maze.BuildRequest{
		Width:      request.Width,
		Height:     request.Height,
		Seed:       request.Seed,
		LoopFactor: request.LoopFactor,
	}

	if request.Start != "" {
		start, err := maze.ParsePosition(request.Start)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		buildReq.Start = &start
	}
	if request.End != "" {
		end, err := maze.ParsePosition(request.End)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		buildReq.End = &end
	}

	id, m, err := mc.mazeService.Create(ctx, buildReq)
	if err != nil {
		if isRequestError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, &GenerateResponse{
		ID:           id,
		Width:        m.Grid.Width,
		Height:       m.Grid.Height,
		Start:        [2]int{m.Start.X, m.Start.Y},
		End:          [2]int{m.End.X, m.End.Y},
		LoopFactor:   m.LoopFactor,
		OpenPassages: m.Grid.OpenPassages(),
	})
}

// document serves the canonical JSON document of a maze.
func (mc *MazeController) document(ctx *gin.Context) {
	m, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(export.JSON(m)))
}

// ascii serves the ASCII rendering of a maze.
func (mc *MazeController) ascii(ctx *gin.Context) {
	m, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.ASCII(m)))
}

// svg serves the SVG rendering of a maze.
func (mc *MazeController) svg(ctx *gin.Context) {
	m, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(export.SVG(m)))
}

// lookup resolves the :ID parameter into a maze, writing the error
// response itself when the id is malformed or unknown.
func (mc *MazeController) lookup(ctx *gin.Context) (*maze.Maze, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}

	m, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return nil, false
	}
	return m, true
}

// isRequestError reports whether err is caused by the request rather than
// the system.
func isRequestError(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimension) ||
		errors.Is(err, maze.ErrInvalidLoopFactor) ||
		errors.Is(err, maze.ErrOutOfBounds) ||
		errors.Is(err, maze.ErrMalformedPosition) ||
		errors.Is(err, service.ErrMazeTooLarge)
}
