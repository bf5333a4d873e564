package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/takedajouji/FitU/internal/middleware"
	"github.com/takedajouji/FitU/internal/utils"
)

// GetDailyBalance calcule le bilan calorique d'une journée
// (?date=YYYY-MM-DD, défaut: aujourd'hui)
func GetDailyBalance(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	date, err := utils.ParseDateParam(r, "date")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := balanceEngine.DailyBalance(context.Background(), user.ID, date)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, result)
}

// GetWeeklyBalance calcule le bilan d'une semaine calendaire
// (?week_start=YYYY-MM-DD, défaut: le lundi le plus récent)
func GetWeeklyBalance(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var weekStart time.Time
	if r.URL.Query().Get("week_start") != "" {
		weekStart, err = utils.ParseDateParam(r, "week_start")
		if err != nil {
			utils.WriteError(w, err)
			return
		}
	} else {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		// Lundi le plus récent (la semaine commence le lundi)
		offset := (int(today.Weekday()) + 6) % 7
		weekStart = today.AddDate(0, 0, -offset)
	}

	result, err := balanceEngine.WeeklyBalance(context.Background(), user.ID, weekStart)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, result)
}
