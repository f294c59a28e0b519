package dashboard

import (
	"net/http"

	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

const (
	keyOfferDeleted      = "web.flash.offer_deleted"
	keyOfferDeleteFailed = "web.flash.offer_delete_failed"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	session, ok := h.RequestSession(r)
	if !ok {
		h.Redirect(w, r, routepath.Login, nil)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := buildView(loc, session, h.service.load(r.Context(), session))
	h.WritePage(w, r, webtemplates.T(loc, "web.dashboard.title"), http.StatusOK, webtemplates.DashboardPage(view, loc))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.RequestSession(r)
	if !ok {
		h.Redirect(w, r, routepath.Login, nil)
		return
	}
	if err := h.service.deleteOffer(r.Context(), session, r.PathValue("offerID")); err != nil {
		notice := flashnotice.NoticeError(keyOfferDeleteFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Dashboard, &notice)
		return
	}
	notice := flashnotice.NoticeSuccess(keyOfferDeleted)
	h.Redirect(w, r, routepath.Dashboard, &notice)
}
