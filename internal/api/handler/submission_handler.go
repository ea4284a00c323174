package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackfest/submission-portal/internal/api/metrics"
	"github.com/hackfest/submission-portal/internal/api/middleware"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

type SubmissionHandler struct {
	submissions ports.SubmissionService
}

func NewSubmissionHandler(submissions ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Submit records the team's project links, exactly once.
//
// @Summary      Submit project links
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequest  true  "Project links and description"
// @Success      200   {object}  submitResponse  "The team had already submitted; the original row is returned"
// @Success      201   {object}  submitResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /submissions [post]
func (h *SubmissionHandler) Submit(c echo.Context) error {
	claim, err := middleware.ClaimFromContext(c)
	if err != nil {
		return err
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.submissions.Submit(c.Request().Context(), claim, toSubmissionContent(req))
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
		metrics.SubmissionsReplayedTotal.Inc()
	} else {
		metrics.SubmissionsCreatedTotal.Inc()
	}
	return c.JSON(status, toSubmitResponse(result))
}

// Mine returns the team's submission, if any.
//
// @Summary      Get my team's submission
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  mineResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /submissions/mine [get]
func (h *SubmissionHandler) Mine(c echo.Context) error {
	claim, err := middleware.ClaimFromContext(c)
	if err != nil {
		return err
	}

	submission, err := h.submissions.Retrieve(c.Request().Context(), claim)
	if err != nil {
		return err
	}
	if submission == nil {
		return c.JSON(http.StatusOK, mineResponse{Submitted: false})
	}

	payload := toSubmissionPayload(submission)
	return c.JSON(http.StatusOK, mineResponse{Submitted: true, Submission: &payload})
}
