package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
)

func toEngineDocument(in dto.PricingRequest) pricing.Document {
	lines := make([]pricing.LineInput, len(in.Lines))
	for i, l := range in.Lines {
		lines[i] = pricing.LineInput{
			ArticleID:       l.ArticleID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxRate:         l.TaxRate,
			FiscalTaxRate:   l.FiscalTaxRate,
			DiscountMode:    pricing.ParseDiscountMode(l.DiscountMode),
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
		}
	}
	return pricing.Document{
		Lines:                 lines,
		GlobalDiscountMode:    pricing.ParseDiscountMode(in.GlobalDiscountMode),
		GlobalDiscountPercent: in.GlobalDiscountPercent,
		GlobalDiscountAmount:  in.GlobalDiscountAmount,
		Advance:               in.Advance,
		PricingMode:           pricing.ParsePricingMode(in.PricingMode),
	}
}

// toPricingRequest inversa de toEngineDocument, usada para devolver el reenvío.
func toPricingRequest(doc pricing.Document) dto.PricingRequest {
	lines := make([]dto.LineRequest, len(doc.Lines))
	for i, l := range doc.Lines {
		lines[i] = dto.LineRequest{
			ArticleID:       l.ArticleID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxRate:         l.TaxRate,
			FiscalTaxRate:   l.FiscalTaxRate,
			DiscountMode:    string(l.DiscountMode),
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
		}
	}
	return dto.PricingRequest{
		PricingMode:           string(doc.PricingMode),
		GlobalDiscountMode:    string(doc.GlobalDiscountMode),
		GlobalDiscountPercent: doc.GlobalDiscountPercent,
		GlobalDiscountAmount:  doc.GlobalDiscountAmount,
		Advance:               doc.Advance,
		Lines:                 lines,
	}
}

func toTotalsResponse(t pricing.DocumentTotals) dto.TotalsResponse {
	resp := dto.TotalsResponse{
		PricingMode:           string(t.PricingMode),
		GrossSubtotal:         t.GrossSubtotal,
		LineDiscountTotal:     t.LineDiscountTotal,
		NetLinesSubtotal:      t.NetLinesSubtotal,
		GlobalDiscountPercent: t.GlobalDiscountPercent,
		GlobalDiscountAmount:  t.GlobalDiscountAmount,
		DisplaySubtotal:       t.DisplaySubtotal,
		DisplayTax:            t.DisplayTax,
		Net:                   t.Net,
		Tax:                   t.Tax,
		Total:                 t.Total,
		Advance:               t.Advance,
		BalanceDue:            t.BalanceDue,
		Breakdown:             make([]dto.TaxBucketResponse, 0, len(t.Breakdown)),
		Lines:                 make([]dto.LineResponse, 0, len(t.Lines)),
	}
	for _, b := range t.Breakdown {
		resp.Breakdown = append(resp.Breakdown, dto.TaxBucketResponse{Rate: b.Rate, Base: b.Base, Tax: b.Tax})
	}
	for i, l := range t.Lines {
		resp.Lines = append(resp.Lines, dto.LineResponse{
			Position:        i,
			ArticleID:       l.ArticleID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxRate:         l.TaxRate,
			FiscalTaxRate:   l.FiscalTaxRate,
			DiscountMode:    string(l.DiscountMode),
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			Gross:           l.Gross,
			NetBeforeGlobal: l.NetBeforeGlobal,
			GlobalShare:     l.GlobalShare,
			Net:             l.Net,
			Tax:             l.Tax,
			TaxExclusive:    l.TaxExclusive,
		})
	}
	return resp
}

func toDiagnosticsResponse(items []pricing.Diagnostic) []dto.DiagnosticResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]dto.DiagnosticResponse, len(items))
	for i, d := range items {
		out[i] = dto.DiagnosticResponse{Line: d.Line, Field: d.Field, Issue: string(d.Issue), Raw: d.Raw}
	}
	return out
}

// toDocumentResponse arma la respuesta desde lo persistido; no recalcula nada.
func toDocumentResponse(doc *entity.Document, lines []*entity.DocumentLine, buckets []*entity.DocumentTaxBucket) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:            doc.ID,
		CompanyID:     doc.CompanyID,
		Kind:          doc.Kind,
		Prefix:        doc.Prefix,
		Number:        doc.Number,
		Date:          doc.Date.Format("2006-01-02"),
		CustomerName:  doc.CustomerName,
		CustomerTaxID: doc.CustomerTaxID,
		Status:        doc.Status,
		TotalsResponse: dto.TotalsResponse{
			PricingMode:           doc.PricingMode,
			GrossSubtotal:         doc.GrossSubtotal,
			LineDiscountTotal:     doc.LineDiscountTotal,
			NetLinesSubtotal:      doc.NetLinesSubtotal,
			GlobalDiscountPercent: doc.GlobalDiscountPercent,
			GlobalDiscountAmount:  doc.GlobalDiscountAmount,
			Net:                   doc.NetTotal,
			Tax:                   doc.TaxTotal,
			Total:                 doc.GrandTotal,
			Advance:               doc.Advance,
			BalanceDue:            doc.BalanceDue,
			Breakdown:             make([]dto.TaxBucketResponse, 0, len(buckets)),
			Lines:                 make([]dto.LineResponse, 0, len(lines)),
		},
	}
	resp.DisplaySubtotal, resp.DisplayTax = doc.NetTotal, doc.TaxTotal
	if pricing.ParsePricingMode(doc.PricingMode) == pricing.TaxIncluded {
		resp.DisplaySubtotal, resp.DisplayTax = doc.GrandTotal, decimal.Zero
	}
	for _, b := range buckets {
		resp.Breakdown = append(resp.Breakdown, dto.TaxBucketResponse{Rate: b.Rate, Base: b.Base, Tax: b.Tax})
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.LineResponse{
			Position:        l.Position,
			ArticleID:       l.ArticleID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxRate:         l.TaxRate,
			FiscalTaxRate:   l.FiscalTaxRate,
			DiscountMode:    l.DiscountMode,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			Gross:           l.Gross,
			NetBeforeGlobal: l.NetBeforeGlobal,
			GlobalShare:     l.GlobalShare,
			Net:             l.Net,
			Tax:             l.Tax,
			TaxExclusive:    l.TaxExclusive,
		})
	}
	return resp
}
