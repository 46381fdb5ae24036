package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(public *gin.RouterGroup, protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	public.POST("/match", handler.Match)
	protected.POST("/match/me", handler.MatchMe)
}

type MatchRequest struct {
	Skills          []string `json:"skills" binding:"required,min=1,dive,min=1"`
	Bio             string   `json:"bio"`
	ExperienceYears float64  `json:"experience_years" binding:"gte=0"`
	DesiredLocation string   `json:"desired_location"`
	Limit           int      `json:"limit" binding:"gte=0"`
}

// MatchedJobResponse is the wire shape of one ranked job. Scores are rounded
// to three decimals for display; ranking happened at full precision.
type MatchedJobResponse struct {
	Job             domain.Job `json:"job"`
	OverallScore    float64    `json:"overall_score"`
	SkillMatch      float64    `json:"skill_match"`
	TextSimilarity  float64    `json:"text_similarity"`
	ExperienceMatch float64    `json:"experience_match"`
	LocationMatch   float64    `json:"location_match"`
	Explanation     string     `json:"match_explanation"`
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func toMatchedJobResponses(results []domain.MatchResult) []MatchedJobResponse {
	out := make([]MatchedJobResponse, len(results))
	for i, r := range results {
		out[i] = MatchedJobResponse{
			Job:             r.Job,
			OverallScore:    round3(r.OverallScore),
			SkillMatch:      round3(r.Scores.SkillMatch),
			TextSimilarity:  round3(r.Scores.TextSimilarity),
			ExperienceMatch: round3(r.Scores.ExperienceMatch),
			LocationMatch:   round3(r.Scores.LocationMatch),
			Explanation:     r.Explanation,
		}
	}
	return out
}

// Match godoc
// @Summary      Match jobs against a candidate profile
// @Description  Ranks all stored jobs against the supplied profile using weighted multi-factor scoring
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        profile  body      MatchRequest  true  "Candidate profile"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	results, err := h.matchUC.MatchJobs(c.Request.Context(), domain.MatchInput{
		Skills:          req.Skills,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		DesiredLocation: req.DesiredLocation,
		Limit:           req.Limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	matched := toMatchedJobResponses(results)
	response.Success(c, http.StatusOK, "Matching completed", gin.H{
		"matched_jobs": matched,
		"count":        len(matched),
	})
}

// MatchMe godoc
// @Summary      Match jobs against the stored profile
// @Description  Ranks all stored jobs against the authenticated user's candidate profile
// @Tags         match
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of results"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /match/me [post]
// @Security     BearerAuth
func (h *MatchHandler) MatchMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 {
		c.Error(apperror.BadRequest("Limit cannot be negative"))
		return
	}

	results, err := h.matchUC.MatchForUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	matched := toMatchedJobResponses(results)
	response.Success(c, http.StatusOK, "Matching completed", gin.H{
		"matched_jobs": matched,
		"count":        len(matched),
	})
}
