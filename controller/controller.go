package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/tsingjyujing/moodscope/analyzer"
	"github.com/tsingjyujing/moodscope/utils"
)

// Analyzer is the part of analyzer.Analyzer the HTTP layer needs.
type Analyzer interface {
	Analyze(ctx context.Context, rawText string) (*analyzer.Report, error)
}

type Controller struct {
	analyzer Analyzer
}

func NewController(a Analyzer) *Controller {
	return &Controller{analyzer: a}
}

type AnalyzeParams struct {
	Text string `json:"text" jsonschema:"the text to analyze, in any language"`
}

type AboutResponse struct {
	HowItWorks string `json:"how_it_works"`
}

// Analyze runs one analysis per request.
// A blank text is a user error answered with 400 and the empty_input warning.
func (c *Controller) Analyze(echoCtx *echo.Context) error {
	ctx := echoCtx.Request().Context()

	param := AnalyzeParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return utils.EchoHandleGenericError(echoCtx, err, http.StatusBadRequest)
	}
	report, err := c.analyzer.Analyze(ctx, param.Text)
	if errors.Is(err, analyzer.ErrEmptyInput) {
		return utils.EchoHandleWarning(echoCtx, analyzer.WarningEmptyInput, err.Error(), http.StatusBadRequest)
	}
	if err != nil {
		return utils.EchoHandleInternalError(echoCtx, err)
	}
	return echoCtx.JSON(http.StatusOK, report)
}

func (c *Controller) About(echoCtx *echo.Context) error {
	return echoCtx.JSON(http.StatusOK, AboutResponse{HowItWorks: analyzer.HowItWorks})
}

// RegisterRoutes mounts the API on an /api/v1 group.
func (c *Controller) RegisterRoutes(group *echo.Group) {
	group.POST("/analyze", c.Analyze)
	group.GET("/about", c.About)
}
