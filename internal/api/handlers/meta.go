package handlers

import (
	"net/http"

	"energy-dashboard/internal/api/models"
	"energy-dashboard/internal/model"

	"github.com/gin-gonic/gin"
)

// ListMethods handles GET /api/v1/methods
func ListMethods(c *gin.Context) {
	infos := []models.MethodInfo{
		{
			Name:        model.MethodLatestYear.String(),
			Description: "Use the most recent year's generation verbatim",
		},
		{
			Name:        model.MethodRecentAverage.String(),
			Description: "Average the most recent years, smoothing single-year weather swings",
			WindowYears: model.RecentAverageWindow,
		},
		{
			Name:        model.MethodRecentTrend.String(),
			Description: "Fit a linear trend over the recent window and evaluate at the reference year",
			WindowYears: model.RecentTrendWindow,
		},
		{
			Name:        model.MethodFullTrend.String(),
			Description: "Fit a linear trend over the full historical series",
		},
	}
	c.JSON(http.StatusOK, gin.H{"methods": infos})
}

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	descriptions := map[model.ScenarioPreset]string{
		model.PresetConservative:    "Slow buildout, 70% renewable share by 2050",
		model.PresetBusinessAsUsual: "Current policy trajectory, 85% renewable share by 2050",
		model.PresetAmbitious:       "Accelerated expansion, 95% renewable share by 2050",
	}

	infos := make([]models.ScenarioInfo, 0, 4)
	for _, p := range model.NamedPresets() {
		params, err := model.ResolvePreset(p, nil)
		if err != nil {
			writeError(c, err)
			return
		}
		infos = append(infos, models.ScenarioInfo{
			Name:        p.String(),
			Description: descriptions[p],
			Parameters:  &params,
		})
	}
	infos = append(infos, models.ScenarioInfo{
		Name:        model.PresetCustom.String(),
		Description: "Caller-supplied growth rates, 90% renewable share target by 2050",
	})
	c.JSON(http.StatusOK, gin.H{"scenarios": infos})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
