package reconcile

import (
	"github.com/joseph-ayodele/utility-bills/constants"
)

// Field paths shared by the extraction schemas and the rules below.
const (
	pathStatement       = "statement"
	pathTotalDue        = "statement.total_amount_due"
	pathPreviousBalance = "statement.previous_balance"
	pathPayments        = "statement.payments_applied"
	pathAdjustments     = "statement.adjustments"
	pathCurrentAdjust   = "statement.current_adjustments"
	pathPenaltiesAdjust = "statement.penalties_adjustments"
	pathLateFees        = "statement.late_fees"
	pathCurrentBilling  = "statement.current_billing"
	pathBalanceForward  = "statement.balance_forward"
	pathPreviousCharges = "statement.total_previous_charges"
	pathBalance         = "statement.balance"

	pathServices     = "services[*]"
	pathServiceTypes = "service_types[*]"
	pathMeters       = "meters[*]"
)

func totalCheck(formulas ...Formula) *TotalCheck {
	return &TotalCheck{
		At:       pathStatement,
		Target:   []string{pathTotalDue, "total_amount_due"},
		Formulas: formulas,
	}
}

// serviceItems checks each service's line items against its current_service.
func serviceItems(exclude ExcludeFunc) LineItemCheck {
	return LineItemCheck{
		Containers: pathServices,
		Items:      "line_item_charges",
		Stated:     []string{"current_service", "service_total"},
		Exclude:    exclude,
	}
}

// flatItems checks a bill-level charge table against current_billing.
func flatItems(exclude ExcludeFunc) LineItemCheck {
	return LineItemCheck{
		Items:   "line_items",
		Stated:  []string{pathCurrentBilling},
		At:      pathStatement,
		Exclude: exclude,
	}
}

func meterItems() LineItemCheck {
	return LineItemCheck{
		Containers: pathMeters,
		Items:      "line_item_charges",
		Stated:     []string{"total_current_charges"},
	}
}

func balanceForwardRule(p constants.Provider, desc string) Rule {
	return Rule{
		Provider:    p,
		Description: desc,
		LineItems:   []LineItemCheck{serviceItems(nil)},
		Total:       totalCheck(F("", Add(pathBalanceForward), Add(pathCurrentBilling))),
	}
}

func previousChargesRule(p constants.Provider, desc string) Rule {
	return Rule{
		Provider:    p,
		Description: desc,
		LineItems:   []LineItemCheck{serviceItems(nil)},
		Total:       totalCheck(F("", Add(pathPreviousCharges), Add(pathCurrentBilling))),
	}
}

// meterRule is the PSE meter-based layout. Bills in this format either carry
// the prior balance into the total or not, so both formulas are accepted.
func meterRule(p constants.Provider, desc string) Rule {
	meters := Add(pathMeters + ".total_current_charges")
	return Rule{
		Provider:    p,
		Description: desc,
		Prepare:     []Step{CorrectMultipliers(pathMeters)},
		LineItems:   []LineItemCheck{meterItems()},
		Total: totalCheck(
			F("meter_charges", meters),
			F("meter_charges_plus_previous_balance", meters, Add(pathPreviousBalance)),
		),
	}
}

func penaltiesRule(p constants.Provider, desc string, items LineItemCheck) Rule {
	return Rule{
		Provider:    p,
		Description: desc,
		LineItems:   []LineItemCheck{items},
		Total: totalCheck(F("",
			Add(pathPreviousBalance),
			Sub(pathPayments),
			Add(pathPenaltiesAdjust),
			Add(pathCurrentBilling),
		)),
	}
}

// signedPaymentsRule expects payments_applied to be printed as a negative amount.
func signedPaymentsRule(p constants.Provider, desc string, items LineItemCheck) Rule {
	return Rule{
		Provider:    p,
		Description: desc,
		LineItems:   []LineItemCheck{items},
		Total: totalCheck(F("",
			Add(pathPreviousBalance),
			Add(pathPayments),
			Add(pathCurrentAdjust),
			Add(pathCurrentBilling),
		)),
	}
}

func adjustmentsRule(p constants.Provider, desc string, items LineItemCheck, extra ...Term) Rule {
	terms := []Term{
		Add(pathPreviousBalance),
		Add(pathPayments),
		Add(pathAdjustments),
	}
	terms = append(terms, extra...)
	terms = append(terms, Add(pathCurrentBilling))
	return Rule{
		Provider:    p,
		Description: desc,
		LineItems:   []LineItemCheck{items},
		Total:       totalCheck(F("", terms...)),
	}
}

// spuRule tries the balance-based layout first and falls back to the
// previous-balance-less-payments layout. The annotation names the one used.
func spuRule() Rule {
	services := AddFirst(pathServiceTypes, "current_service", "current_service_amount")
	return Rule{
		Provider:    constants.SeattlePublicUtil,
		Description: "Seattle Public Utilities: per service type subtotals; balance + services + adjustments",
		LineItems: []LineItemCheck{{
			Containers: pathServiceTypes,
			Items:      "line_item_charges",
			Stated:     []string{"current_service", "current_service_amount"},
			Exclude:    SummaryRowExcluder(),
		}},
		Total: totalCheck(
			F("preferred", Add(pathBalance), services, Add(pathAdjustments)),
			F("fallback", Add(pathPreviousBalance), Sub(pathPayments), services, Add(pathAdjustments)),
		),
	}
}

func valleyViewRule() Rule {
	items := flatItems(SummaryRowExcluder())
	items.RepairSplitCharges = true
	return signedPaymentsRule(constants.ValleyView,
		"Valley View Sewer: flat charge table with first-unit split charges", items)
}

func defaultRules() []Rule {
	summary := SummaryRowExcluder()
	return []Rule{
		balanceForwardRule(constants.Auburn, "City of Auburn: balance forward + current billing"),
		balanceForwardRule(constants.Olympia, "City of Olympia: balance forward + current billing"),
		balanceForwardRule(constants.Kent, "City of Kent: balance forward + current billing"),
		balanceForwardRule(constants.Renton, "City of Renton: balance forward + current billing"),
		balanceForwardRule(constants.Tukwila, "City of Tukwila: balance forward + current billing"),
		balanceForwardRule(constants.Northshore, "Northshore Utility District: balance forward + current billing"),
		balanceForwardRule(constants.Issaquah, "City of Issaquah: balance forward + current billing"),

		previousChargesRule(constants.Bellevue, "City of Bellevue: total previous charges + current billing"),
		previousChargesRule(constants.Redmond, "City of Redmond: total previous charges + current billing"),
		previousChargesRule(constants.Kirkland, "City of Kirkland: total previous charges + current billing"),
		previousChargesRule(constants.Woodinville, "Woodinville Water District: total previous charges + current billing"),
		previousChargesRule(constants.PSE, "Puget Sound Energy (combined statement): total previous charges + current billing"),

		meterRule(constants.PSEElectric, "Puget Sound Energy electric: per-meter charges, optionally plus previous balance"),
		meterRule(constants.PSEGas, "Puget Sound Energy gas: per-meter charges, optionally plus previous balance"),

		penaltiesRule(constants.Bothell, "City of Bothell: previous - payments + penalties/adjustments + current", flatItems(summary)),
		penaltiesRule(constants.Everett, "City of Everett: previous - payments + penalties/adjustments + current", flatItems(summary)),
		penaltiesRule(constants.Lynnwood, "City of Lynnwood: previous - payments + penalties/adjustments + current", flatItems(summary)),
		penaltiesRule(constants.MercerIsland, "City of Mercer Island: previous - payments + penalties/adjustments + current", serviceItems(nil)),

		signedPaymentsRule(constants.Lacey, "City of Lacey: previous + signed payments + adjustments + current", serviceItems(nil)),
		valleyViewRule(),
		signedPaymentsRule(constants.Recology, "Recology: previous + signed payments + adjustments + current", flatItems(summary)),
		signedPaymentsRule(constants.Lakehaven, "Lakehaven Water & Sewer: previous + signed payments + adjustments + current", serviceItems(nil)),
		signedPaymentsRule(constants.SoosCreek, "Soos Creek Water & Sewer: previous + signed payments + adjustments + current", serviceItems(nil)),
		signedPaymentsRule(constants.CedarRiver, "Cedar River Water & Sewer: previous + signed payments + adjustments + current", serviceItems(nil)),

		spuRule(),

		adjustmentsRule(constants.WasteManagement, "Waste Management: previous + payments + adjustments + current", flatItems(summary)),
		adjustmentsRule(constants.RepublicServices, "Republic Services: previous + payments + adjustments + current", flatItems(summary)),
		adjustmentsRule(constants.WasteConnections, "Waste Connections: previous + payments + adjustments + current", flatItems(summary)),
		adjustmentsRule(constants.SeattleCityLight, "Seattle City Light: previous + payments + adjustments + current", serviceItems(nil)),
		adjustmentsRule(constants.TacomaPublicUtilities, "Tacoma Public Utilities: previous + payments + adjustments + late fees + current",
			serviceItems(nil), Add(pathLateFees)),
		adjustmentsRule(constants.SammamishPlateau, "Sammamish Plateau Water: previous + payments + adjustments + late fees + current",
			serviceItems(nil), Add(pathLateFees)),
	}
}
