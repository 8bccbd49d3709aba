package ast

// DataTypeKind discriminates the six data_type_descriptor variants.
type DataTypeKind int

const (
	DataTypeCharString DataTypeKind = iota
	DataTypeBitString
	DataTypeExactNumeric
	DataTypeApproximateNumeric
	DataTypeDatetime
	DataTypeInterval
)

// DataTypeDescriptor is data_type_descriptor: a single flexible record
// whose fields are populated according to Kind (precision, scale,
// charset, with_tz, unit all live on one shape rather than six
// disjoint ones).
type DataTypeDescriptor struct {
	Kind DataTypeKind

	// Name is the canonical lowercase type name, e.g. "char", "varchar",
	// "int", "numeric", "float", "date", "timestamp", "interval".
	Name string

	Length    int // char/bit string length; -1 if absent
	Precision int // numeric precision, or datetime fractional-seconds precision; -1 if absent
	Scale     int // numeric scale; -1 if absent

	Varying      bool // CHARACTER VARYING / CHAR VARYING / VARCHAR
	National     bool // NATIONAL CHARACTER / NCHAR
	WithTimeZone bool // datetime WITH TIME ZONE

	IntervalQualifier *IntervalQualifier // DataTypeInterval only
	Charset           *Identifier        // optional CHARACTER SET on a char string type
}

func (*DataTypeDescriptor) isNode() {}

// ConstraintKind discriminates the five constraint variants.
type ConstraintKind int

const (
	ConstraintNotNull ConstraintKind = iota
	ConstraintUnique
	ConstraintPrimaryKey
	ConstraintForeignKey
	ConstraintCheck
)

// MatchType is the referential MATCH option on a foreign key.
type MatchType int

const (
	MatchFull MatchType = iota
	MatchPartial
	MatchSimple
)

// RefAction is a referential action for ON DELETE/ON UPDATE.
type RefAction int

const (
	RefNoAction RefAction = iota
	RefCascade
	RefSetNull
	RefSetDefault
	RefRestrict
)

// ForeignKeyRef is the REFERENCES clause of a foreign key constraint.
type ForeignKeyRef struct {
	RefTable   Identifier
	RefColumns []Identifier

	HasMatch  bool
	Match     MatchType

	HasOnDelete bool
	OnDelete    RefAction

	HasOnUpdate bool
	OnUpdate    RefAction
}

func (*ForeignKeyRef) isNode() {}

// Constraint is constraint: a named or anonymous NOT NULL, UNIQUE,
// PRIMARY KEY, FOREIGN KEY, or CHECK constraint. Columns holds the
// table-level column list for UNIQUE/PRIMARY KEY/FOREIGN KEY; it is
// empty for a column-level constraint (the owning ColumnDefinition
// supplies the column instead).
type Constraint struct {
	Name *Identifier
	Kind ConstraintKind

	Columns []Identifier

	ForeignKey *ForeignKeyRef

	CheckCondition *SearchCondition
}

func (*Constraint) isNode() {}

// ColumnDefaultKind discriminates what a column's DEFAULT clause supplies.
type ColumnDefaultKind int

const (
	DefaultLiteral ColumnDefaultKind = iota
	DefaultNull
	DefaultCurrentUser
	DefaultCurrentDate
	DefaultCurrentTime
	DefaultCurrentTimestamp
	DefaultUser
)

// ColumnDefault is a column's DEFAULT clause.
type ColumnDefault struct {
	Kind  ColumnDefaultKind
	Value ValueExpression // meaningful only when Kind == DefaultLiteral
}

func (*ColumnDefault) isNode() {}

// ColumnDefinition is column_definition: a name, data type, optional
// default, zero or more constraints, and an optional collation.
type ColumnDefinition struct {
	Name       Identifier
	DataType   *DataTypeDescriptor
	Default    *ColumnDefault
	Constraints []*Constraint
	Collation  *Identifier
}

func (*ColumnDefinition) isNode() {}
