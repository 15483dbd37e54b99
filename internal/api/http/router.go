package httpapi

import "github.com/gorilla/mux"

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Order lifecycle
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/sync", h.syncOrders).Methods("POST")
	r.HandleFunc("/api/orders/unpaid", h.unpaidOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/items", h.addItems).Methods("POST")
	r.HandleFunc("/api/orders/{id}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/api/items/{id}", h.voidItem).Methods("DELETE")
	r.HandleFunc("/api/items/batch-void", h.batchVoid).Methods("POST")

	// Menu catalog
	r.HandleFunc("/api/menus", h.listMenus).Methods("GET")
	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus/{id}", h.updateMenu).Methods("PUT")
	r.HandleFunc("/api/menus/{id}", h.deleteMenu).Methods("DELETE")
	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.deleteCategory).Methods("DELETE")

	// History and reporting
	r.HandleFunc("/api/history", h.history).Methods("GET")
	r.HandleFunc("/api/reports", h.report).Methods("GET")
	r.HandleFunc("/api/reports/export.csv", h.exportCSV).Methods("GET")
	r.HandleFunc("/api/reports/export.xlsx", h.exportXLSX).Methods("GET")
	r.HandleFunc("/api/reports/export.pdf", h.exportPDF).Methods("GET")
	r.HandleFunc("/api/dashboard", h.dashboard).Methods("GET")
}
