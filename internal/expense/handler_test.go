package expense_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/storage"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Expense Handler Integration", func() {
	var (
		db      *storage.DB
		service *expense.Service
		router  chi.Router
	)

	BeforeEach(func() {
		db = storage.New(":memory:")
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = expense.NewService(storage.Expenses(db), slogger)
		handler := expense.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/expenses", handler.ListExpenses)
		router.Post("/expenses", handler.CreateExpense)
		router.Get("/expenses/{id}", handler.GetExpense)
		router.Patch("/expenses/{id}", handler.UpdateExpense)
		router.Delete("/expenses/{id}", handler.DeleteExpense)
	})

	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})

	It("should handle GET /expenses request successfully", func() {
		_, err := service.Create(expense.CreateExpenseDTO{Title: "Weekend Trip"})
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response []*expense.Expense
		err = json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())
		Expect(response).To(HaveLen(1))
		Expect(response[0].Title).To(Equal("Weekend Trip"))
	})

	It("should create an expense from a JSON payload", func() {
		body := `{"title":"Groceries","description":"weekly shop","icon":"cart","color":"#e07a5f"}`
		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created expense.Expense
		err := json.NewDecoder(w.Body).Decode(&created)
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).NotTo(BeEmpty())
		Expect(created.Title).To(Equal("Groceries"))
		Expect(created.UpdatedAt).To(Equal(created.CreatedAt))
	})

	It("should reject a payload without a title", func() {
		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{"description":"no title"}`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return 404 for a missing expense id", func() {
		req := httptest.NewRequest(http.MethodGet, "/expenses/missing-id", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should patch supplied fields and keep the rest", func() {
		created, err := service.Create(expense.CreateExpenseDTO{Title: "Groceries", Description: "weekly shop"})
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPatch, "/expenses/"+created.ID, strings.NewReader(`{"title":"Monthly Groceries"}`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var updated expense.Expense
		err = json.NewDecoder(w.Body).Decode(&updated)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Title).To(Equal("Monthly Groceries"))
		Expect(updated.Description).To(Equal("weekly shop"))
	})

	It("should return 404 when patching a missing id", func() {
		req := httptest.NewRequest(http.MethodPatch, "/expenses/missing-id", strings.NewReader(`{"title":"Renamed"}`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should delete with 204 and stay silent for absent ids", func() {
		created, err := service.Create(expense.CreateExpenseDTO{Title: "Groceries"})
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodDelete, "/expenses/"+created.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		req = httptest.NewRequest(http.MethodDelete, "/expenses/"+created.ID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNoContent))
	})
})
