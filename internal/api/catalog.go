package api

import (
	"net/http"

	"github.com/wildlog/wildlog_api/internal/api/dto"
)

// ListSpecies godoc
// @Summary List catalog species
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Species "Species"
// @Router /catalog/species [get]
func (s *Server) listSpecies(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, s.progress.Catalog().AllSpecies())
}

// ListBadges godoc
// @Summary List badge definitions
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.BadgesResponse "Badges"
// @Router /catalog/badges [get]
func (s *Server) listBadges(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, dto.NewBadgesResponse(s.progress.Catalog()))
}

// ListLevels godoc
// @Summary List the level table
// @Tags catalog
// @Produce json
// @Success 200 {array} models.LevelBracket "Levels"
// @Router /catalog/levels [get]
func (s *Server) listLevels(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, s.progress.Catalog().Levels)
}
