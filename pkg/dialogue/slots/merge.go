package slots

// Merge combines two slot states with a strict precedence rule: every field
// already resolved in primary stays as-is, and fallback only fills the gaps.
// The orchestrator calls it with the current turn as primary and the
// history-derived state as fallback, so a new budget always beats an old one.
func Merge(primary, fallback SlotState) SlotState {
	merged := primary

	if !merged.HasBudget && fallback.HasBudget {
		merged.HasBudget = true
		merged.BudgetAmount = fallback.BudgetAmount
		merged.IsMinimumBudget = fallback.IsMinimumBudget
	}

	if !merged.HasUseCase && fallback.HasUseCase {
		merged.HasUseCase = true
		merged.UseCases = append([]string(nil), fallback.UseCases...)
	}

	if !merged.HasProductType && fallback.HasProductType {
		merged.HasProductType = true
		merged.ProductType = fallback.ProductType
	}

	if !merged.HasCategory && fallback.HasCategory {
		merged.HasCategory = true
		merged.Category = fallback.Category
		merged.RequestedAccessory = fallback.RequestedAccessory
	}

	if !merged.HasBrand && fallback.HasBrand {
		merged.HasBrand = true
		merged.Brand = fallback.Brand
	}

	if !merged.HasSpecs && fallback.HasSpecs {
		merged.HasSpecs = true
		merged.Specs = fallback.Specs
	}

	return merged
}
