package creator

import (
	"net/http"

	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

func registerCreateRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Create, h.handleCreatePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreatePrefix+"{$}", h.handleCreatePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateMode, h.handleMode)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateAnswer, h.handleAnswer)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateUpload, h.handleUpload)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateTemplate, h.handleTemplate)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateCustomize, h.handleCreateCustomize)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreatePreview, h.handleCreatePreview)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateSave, h.handleCreateSave)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateRestart, h.handleRestart)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreatePrefix+"{rest...}", h.WriteNotFound)
}

func registerEditRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.EditPattern, h.handleEditPage)
	mux.HandleFunc(http.MethodGet+" "+routepath.EditPattern+"/{$}", h.handleEditPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditCustomizePattern, h.handleEditCustomize)
	mux.HandleFunc(http.MethodGet+" "+routepath.EditPreviewPattern, h.handleEditPreview)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditSavePattern, h.handleEditSave)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditExportPattern, h.handleEditExport)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditReloadPattern, h.handleEditReload)
	mux.HandleFunc(http.MethodGet+" "+routepath.EditPrefix+"{rest...}", h.WriteNotFound)
}
