// Code generated by ent, DO NOT EDIT.

package reconcilejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldFileID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldStatus, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldProvider, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldModelName, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldPageCount, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldPassed, v))
}

// Matched applies equality check predicate on the "matched" field. It's identical to MatchedEQ.
func Matched(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldMatched, v))
}

// Mismatched applies equality check predicate on the "mismatched" field. It's identical to MismatchedEQ.
func Mismatched(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldMismatched, v))
}

// Inapplicable applies equality check predicate on the "inapplicable" field. It's identical to InapplicableEQ.
func Inapplicable(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldInapplicable, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldFileID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContainsFold(FieldStatus, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContainsFold(FieldProvider, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContainsFold(FieldModelName, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldPageCount, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldExtractedJSON))
}

// AnnotatedJSONIsNil applies the IsNil predicate on the "annotated_json" field.
func AnnotatedJSONIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldAnnotatedJSON))
}

// AnnotatedJSONNotNil applies the NotNil predicate on the "annotated_json" field.
func AnnotatedJSONNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldAnnotatedJSON))
}

// CorrectionsIsNil applies the IsNil predicate on the "corrections" field.
func CorrectionsIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldCorrections))
}

// CorrectionsNotNil applies the NotNil predicate on the "corrections" field.
func CorrectionsNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldCorrections))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldPassed, v))
}

// PassedIsNil applies the IsNil predicate on the "passed" field.
func PassedIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldPassed))
}

// PassedNotNil applies the NotNil predicate on the "passed" field.
func PassedNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldPassed))
}

// MatchedEQ applies the EQ predicate on the "matched" field.
func MatchedEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldMatched, v))
}

// MatchedNEQ applies the NEQ predicate on the "matched" field.
func MatchedNEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldMatched, v))
}

// MatchedIn applies the In predicate on the "matched" field.
func MatchedIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldMatched, vs...))
}

// MatchedNotIn applies the NotIn predicate on the "matched" field.
func MatchedNotIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldMatched, vs...))
}

// MatchedGT applies the GT predicate on the "matched" field.
func MatchedGT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldMatched, v))
}

// MatchedGTE applies the GTE predicate on the "matched" field.
func MatchedGTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldMatched, v))
}

// MatchedLT applies the LT predicate on the "matched" field.
func MatchedLT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldMatched, v))
}

// MatchedLTE applies the LTE predicate on the "matched" field.
func MatchedLTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldMatched, v))
}

// MismatchedEQ applies the EQ predicate on the "mismatched" field.
func MismatchedEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldMismatched, v))
}

// MismatchedNEQ applies the NEQ predicate on the "mismatched" field.
func MismatchedNEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldMismatched, v))
}

// MismatchedIn applies the In predicate on the "mismatched" field.
func MismatchedIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldMismatched, vs...))
}

// MismatchedNotIn applies the NotIn predicate on the "mismatched" field.
func MismatchedNotIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldMismatched, vs...))
}

// MismatchedGT applies the GT predicate on the "mismatched" field.
func MismatchedGT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldMismatched, v))
}

// MismatchedGTE applies the GTE predicate on the "mismatched" field.
func MismatchedGTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldMismatched, v))
}

// MismatchedLT applies the LT predicate on the "mismatched" field.
func MismatchedLT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldMismatched, v))
}

// MismatchedLTE applies the LTE predicate on the "mismatched" field.
func MismatchedLTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldMismatched, v))
}

// InapplicableEQ applies the EQ predicate on the "inapplicable" field.
func InapplicableEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldInapplicable, v))
}

// InapplicableNEQ applies the NEQ predicate on the "inapplicable" field.
func InapplicableNEQ(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldInapplicable, v))
}

// InapplicableIn applies the In predicate on the "inapplicable" field.
func InapplicableIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldInapplicable, vs...))
}

// InapplicableNotIn applies the NotIn predicate on the "inapplicable" field.
func InapplicableNotIn(vs ...int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldInapplicable, vs...))
}

// InapplicableGT applies the GT predicate on the "inapplicable" field.
func InapplicableGT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldInapplicable, v))
}

// InapplicableGTE applies the GTE predicate on the "inapplicable" field.
func InapplicableGTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldInapplicable, v))
}

// InapplicableLT applies the LT predicate on the "inapplicable" field.
func InapplicableLT(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldInapplicable, v))
}

// InapplicableLTE applies the LTE predicate on the "inapplicable" field.
func InapplicableLTE(v int) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldInapplicable, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ReconcileJob {
	return predicate.ReconcileJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.BillFile) predicate.ReconcileJob {
	return predicate.ReconcileJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReconcileJob) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReconcileJob) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReconcileJob) predicate.ReconcileJob {
	return predicate.ReconcileJob(sql.NotPredicates(p))
}
