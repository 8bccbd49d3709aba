package ast

import "github.com/oarkflow/sqltoast/lexeme"

// ValueExpression is the value_expression tagged variant: numeric,
// character, datetime, or interval.
type ValueExpression interface {
	Node
	isValueExpression()
}

// ValueExpressionPrimary is the leaf of every *_primary production
// (numeric_primary, character_primary, datetime_primary's value case).
// numeric_primary := value_expression_primary | numeric_value_function
// is modeled by having NumericValueFunction (and its string/datetime
// siblings) implement this interface directly, rather than through an
// extra wrapper type.
type ValueExpressionPrimary interface {
	Node
	isValueExpressionPrimary()
}

// --- numeric chain: numeric_expression -> numeric_term -> numeric_factor ---

// NumericValueExpression is numeric_term (('+'|'-') numeric_term)*,
// built left-associatively: Left is nil for the first term in the chain.
type NumericValueExpression struct {
	Left *NumericValueExpression
	Op   ArithOp
	Term *NumericTerm
}

func (*NumericValueExpression) isNode()            {}
func (*NumericValueExpression) isValueExpression() {}

// NumericTerm is numeric_factor (('*'|'/') numeric_factor)*.
type NumericTerm struct {
	Left   *NumericTerm
	Op     ArithOp
	Factor *NumericFactor
}

func (*NumericTerm) isNode() {}

// NumericFactor is [sign] numeric_primary.
type NumericFactor struct {
	Sign    Sign
	Primary ValueExpressionPrimary
}

func (*NumericFactor) isNode() {}

// --- character chain ---

// CharacterValueExpression is one or more character_factor concatenated
// with ||.
type CharacterValueExpression struct {
	Factors []CharacterFactor
}

func (*CharacterValueExpression) isNode()            {}
func (*CharacterValueExpression) isValueExpression() {}

// CharacterFactor is character_primary [COLLATE identifier].
type CharacterFactor struct {
	Primary   ValueExpressionPrimary
	Collation *Identifier
}

// --- datetime / interval chain ---

// DatetimeValueExpression is a datetime_term optionally adjusted by
// adding or subtracting an interval_term.
type DatetimeValueExpression struct {
	Term     ValueExpressionPrimary
	Op       ArithOp
	Interval *IntervalTerm
}

func (*DatetimeValueExpression) isNode()            {}
func (*DatetimeValueExpression) isValueExpression() {}

// IntervalValueExpression is interval_term (('+'|'-') interval_term)*.
type IntervalValueExpression struct {
	Left *IntervalValueExpression
	Op   ArithOp
	Term *IntervalTerm
}

func (*IntervalValueExpression) isNode()            {}
func (*IntervalValueExpression) isValueExpression() {}

// IntervalTerm is an interval primary, optionally qualified by an
// interval_qualifier, optionally multiplied or divided by a numeric_factor.
type IntervalTerm struct {
	Primary   ValueExpressionPrimary
	Qualifier *IntervalQualifier
	MulDivOp  ArithOp
	Factor    *NumericFactor
}

func (*IntervalTerm) isNode() {}

// IntervalUnit names the single-datetime-field vocabulary used by
// interval qualifiers and EXTRACT.
type IntervalUnit int

const (
	UnitYear IntervalUnit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

// IntervalQualifier is start_field TO end_field with optional leading and
// fractional-seconds precision, e.g. `DAY(2) TO HOUR` or `SECOND(6,3)`.
type IntervalQualifier struct {
	StartUnit       IntervalUnit
	StartPrecision  int // -1 if absent
	HasEndUnit      bool
	EndUnit         IntervalUnit
	SecondPrecision int // -1 if absent; only meaningful when StartUnit or EndUnit is SECOND
}

func (*IntervalQualifier) isNode() {}

// --- value_expression_primary implementors ---

// LiteralKind narrows which of the nine literal token kinds produced a
// Literal node.
type LiteralKind int

const (
	LitUnsignedInteger LiteralKind = iota
	LitSignedInteger
	LitUnsignedDecimal
	LitSignedDecimal
	LitApproximateNumber
	LitCharacterString
	LitNationalCharacterString
	LitBitString
	LitHexString
)

// Literal is a single scalar literal token.
type Literal struct {
	Kind LiteralKind
	Lex  lexeme.Lexeme
}

func (*Literal) isNode() {}

// Text returns the literal's raw source text, delimiters included.
func (l *Literal) Text() string { return l.Lex.String() }

// UnsignedValueKind distinguishes a plain literal from the niladic
// SQL-92 "value specification" keywords.
type UnsignedValueKind int

const (
	UnsignedLiteral UnsignedValueKind = iota
	UnsignedNull
	UnsignedUser
	UnsignedCurrentUser
	UnsignedSessionUser
	UnsignedSystemUser
	UnsignedValueKeyword
)

// UnsignedValueSpecification is unsigned_value_specification: an
// unsigned literal or one of NULL/USER/CURRENT_USER/SESSION_USER/
// SYSTEM_USER/VALUE.
type UnsignedValueSpecification struct {
	Kind    UnsignedValueKind
	Literal *Literal
}

func (*UnsignedValueSpecification) isNode()                  {}
func (*UnsignedValueSpecification) isValueExpressionPrimary() {}

// ColumnReference is column_reference: an optional qualifying
// correlation/table name plus a column name.
type ColumnReference struct {
	Qualifier *Identifier
	Name      Identifier
}

func (*ColumnReference) isNode()                  {}
func (*ColumnReference) isValueExpressionPrimary() {}

// SetFunctionKind enumerates the five SQL-92 set functions.
type SetFunctionKind int

const (
	SetCount SetFunctionKind = iota
	SetAvg
	SetMin
	SetMax
	SetSum
)

// SetFunction is set_function: COUNT(*) or
// kind([DISTINCT|ALL] value_expression).
type SetFunction struct {
	Kind     SetFunctionKind
	Star     bool
	Distinct bool
	Operand  ValueExpression
}

func (*SetFunction) isNode()                  {}
func (*SetFunction) isValueExpressionPrimary() {}

// ScalarSubquery is scalar_subquery: a parenthesized query expected to
// produce exactly one row and one column.
type ScalarSubquery struct {
	Query *QueryExpression
}

func (*ScalarSubquery) isNode()                  {}
func (*ScalarSubquery) isValueExpressionPrimary() {}

// CaseExpressionKind distinguishes the four forms of case_expression.
type CaseExpressionKind int

const (
	CaseCoalesce CaseExpressionKind = iota
	CaseNullif
	CaseSimple
	CaseSearched
)

// WhenClause is one WHEN arm of a simple_case (CompareValue) or
// searched_case (Condition).
type WhenClause struct {
	CompareValue ValueExpression // simple_case
	Condition    *SearchCondition // searched_case
	Result       ValueExpression
	ResultIsNull bool
}

// CaseExpression is case_expression: COALESCE, NULLIF, simple CASE, or
// searched CASE.
type CaseExpression struct {
	Kind CaseExpressionKind

	CoalesceList []ValueExpression // CaseCoalesce

	NullifLeft  ValueExpression // CaseNullif
	NullifRight ValueExpression

	SimpleOperand ValueExpression // CaseSimple

	WhenClauses []WhenClause // CaseSimple, CaseSearched

	HasElse      bool
	ElseResult   ValueExpression
	ElseIsNull   bool
}

func (*CaseExpression) isNode()                  {}
func (*CaseExpression) isValueExpressionPrimary() {}

// Parenthesized is a value expression wrapped in parentheses purely for
// grouping; it carries no operator of its own.
type Parenthesized struct {
	Inner ValueExpression
}

func (*Parenthesized) isNode()                  {}
func (*Parenthesized) isValueExpressionPrimary() {}

// CastSpecification is CAST(operand AS target_type). The operand is
// either a value expression or the NULL keyword.
type CastSpecification struct {
	Operand       ValueExpression
	OperandIsNull bool
	TargetType    *DataTypeDescriptor
}

func (*CastSpecification) isNode()                  {}
func (*CastSpecification) isValueExpressionPrimary() {}

// NumericFunctionKind enumerates numeric_value_function variants.
type NumericFunctionKind int

const (
	FuncExtract NumericFunctionKind = iota
	FuncPosition
	FuncCharLength
	FuncCharacterLength
	FuncBitLength
	FuncOctetLength
)

// NumericValueFunction is EXTRACT(unit FROM source), POSITION(needle IN
// haystack), or one of the *_LENGTH functions over a single operand.
type NumericValueFunction struct {
	Kind NumericFunctionKind

	ExtractUnit   IntervalUnit
	ExtractSource ValueExpression

	PositionNeedle   ValueExpression
	PositionHaystack ValueExpression

	LengthOperand ValueExpression
}

func (*NumericValueFunction) isNode()                  {}
func (*NumericValueFunction) isValueExpressionPrimary() {}

// StringFunctionKind enumerates string_function variants.
type StringFunctionKind int

const (
	StrUpper StringFunctionKind = iota
	StrLower
	StrSubstring
	StrConvert
	StrTranslate
	StrTrim
)

// TrimSpecifier selects which side TRIM removes characters from.
type TrimSpecifier int

const (
	TrimNone TrimSpecifier = iota
	TrimLeading
	TrimTrailing
	TrimBoth
)

// StringFunction is UPPER/LOWER/SUBSTRING/CONVERT/TRANSLATE/TRIM.
type StringFunction struct {
	Kind    StringFunctionKind
	Operand ValueExpression

	SubstringFrom ValueExpression // SUBSTRING(x FROM start [FOR len])
	SubstringFor  ValueExpression

	ConversionName  *Identifier // CONVERT(x USING name)
	TranslationName *Identifier // TRANSLATE(x USING name)

	TrimSpec TrimSpecifier // TRIM([spec] [char] FROM x)
	TrimChar ValueExpression
}

func (*StringFunction) isNode()                  {}
func (*StringFunction) isValueExpressionPrimary() {}

// DatetimeFunctionKind enumerates the niladic datetime functions.
type DatetimeFunctionKind int

const (
	FuncCurrentDate DatetimeFunctionKind = iota
	FuncCurrentTime
	FuncCurrentTimestamp
)

// DatetimeValueFunction is CURRENT_DATE, CURRENT_TIME[(p)], or
// CURRENT_TIMESTAMP[(p)].
type DatetimeValueFunction struct {
	Kind      DatetimeFunctionKind
	Precision int // -1 if absent
}

func (*DatetimeValueFunction) isNode()                  {}
func (*DatetimeValueFunction) isValueExpressionPrimary() {}
