package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddleware)

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Ads. Static paths are registered before /ad/:id so pat does not
	// swallow them as an id.
	mux.Post("/ad", authMiddleware.ThenFunc(app.adHandler.CreateAd))
	mux.Get("/ad/get", authMiddleware.ThenFunc(app.adHandler.GetAds))
	mux.Get("/ad/search", authMiddleware.ThenFunc(app.adHandler.SearchAds))
	mux.Get("/ad/user", authMiddleware.ThenFunc(app.adHandler.GetUserAds))
	mux.Get("/ad/:id", authMiddleware.ThenFunc(app.adHandler.GetAdByID))
	mux.Put("/ad/:id", authMiddleware.ThenFunc(app.adHandler.UpdateAd))
	mux.Del("/ad/:id", authMiddleware.ThenFunc(app.adHandler.DeleteAd))

	// Exchange proposals
	mux.Post("/proposal", authMiddleware.ThenFunc(app.proposalHandler.CreateProposal))
	mux.Get("/proposal", authMiddleware.ThenFunc(app.proposalHandler.GetProposals))
	mux.Put("/proposal/:id/status", authMiddleware.ThenFunc(app.proposalHandler.UpdateProposalStatus))
	mux.Get("/proposal/:id", authMiddleware.ThenFunc(app.proposalHandler.GetProposalByID))

	// Categories and configured value sets
	mux.Post("/category", authMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/category", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/category/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/category/:id", authMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/category/:id", authMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))
	mux.Get("/catalog/conditions", standardMiddleware.ThenFunc(app.categoryHandler.GetConditions))
	mux.Get("/catalog/statuses", standardMiddleware.ThenFunc(app.categoryHandler.GetStatuses))

	// Proposal notifications
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
