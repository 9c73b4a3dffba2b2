package reports

import (
	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
)

// PDFRenderer genera la versión imprimible de los reportes.
// La implementación vive en infraestructura (Maroto); aquí solo el contrato.
type PDFRenderer interface {
	RenderProceedsVsExpenses(r domain.DateRange, rep *dto.ProceedsVsExpensesReport) ([]byte, error)
	RenderLotProfitability(rep *dto.LotProfitabilityReport) ([]byte, error)
}
