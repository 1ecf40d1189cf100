package handlers

import "net/http"

func (a *App) DashboardNGO(w http.ResponseWriter, r *http.Request) {
	dash, err := a.Reports.NGODashboardFor(r.Context(), a.principal(r))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "NGO dashboard fetched successfully", dash)
}

func (a *App) DashboardDonor(w http.ResponseWriter, r *http.Request) {
	dash, err := a.Reports.DonorDashboardFor(r.Context(), a.principal(r))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "donor dashboard fetched successfully", dash)
}

func (a *App) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Reports.PlatformOverview(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "platform stats fetched successfully", stats)
}
