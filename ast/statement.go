package ast

// TableType is the table_type of a CREATE TABLE statement: a normal
// persistent base table, or a session-scoped temporary table that is
// either visible to every module of the session (GLOBAL) or private to
// the current module (LOCAL).
type TableType int

const (
	TableNormal TableType = iota
	TableTemporaryGlobal
	TableTemporaryLocal
)

// CreateSchemaStatement is CREATE SCHEMA <name>
// [AUTHORIZATION <identifier>] [CHARACTER SET <id>] [COLLATE <id>],
// each optional clause in either order.
type CreateSchemaStatement struct {
	Name           Identifier
	Authorization  *Identifier
	DefaultCharset *Identifier
	Collation      *Identifier
}

func (*CreateSchemaStatement) isNode()      {}
func (*CreateSchemaStatement) isStatement() {}

// DropSchemaStatement is DROP SCHEMA <name> [CASCADE|RESTRICT]. The
// schema name must be a simple (unqualified) identifier.
type DropSchemaStatement struct {
	Name      Identifier
	Behaviour DropBehaviour
}

func (*DropSchemaStatement) isNode()      {}
func (*DropSchemaStatement) isStatement() {}

// CreateTableStatement is CREATE [GLOBAL|LOCAL] TEMPORARY TABLE <name>
// (<column_definition|table_constraint>, ...).
type CreateTableStatement struct {
	Type        TableType
	Name        Identifier
	Columns     []*ColumnDefinition
	Constraints []*Constraint
}

func (*CreateTableStatement) isNode()      {}
func (*CreateTableStatement) isStatement() {}

// DropTableStatement is DROP TABLE <name> [CASCADE|RESTRICT].
type DropTableStatement struct {
	Name      Identifier
	Behaviour DropBehaviour
}

func (*DropTableStatement) isNode()      {}
func (*DropTableStatement) isStatement() {}

// AlterTableActionKind discriminates what a single ALTER TABLE action
// does.
type AlterTableActionKind int

const (
	AlterAddColumn AlterTableActionKind = iota
	AlterAlterColumn
	AlterDropColumn
	AlterAddConstraint
	AlterDropConstraint
)

// AlterColumnActionKind is the sub-action of an ALTER COLUMN clause.
type AlterColumnActionKind int

const (
	AlterColumnSetDefault AlterColumnActionKind = iota
	AlterColumnDropDefault
)

// AlterTableAction is one action of an ALTER TABLE statement.
type AlterTableAction struct {
	Kind AlterTableActionKind

	// AlterAddColumn
	Column *ColumnDefinition

	// AlterAlterColumn, AlterDropColumn
	ColumnName Identifier

	// AlterAlterColumn
	AlterColumnKind AlterColumnActionKind
	DefaultValue    *ColumnDefault // set when AlterColumnKind == AlterColumnSetDefault

	// AlterAddConstraint
	Constraint *Constraint

	// AlterDropConstraint
	ConstraintName Identifier
}

// AlterTableStatement is ALTER TABLE <name> <action>[, <action>]*. The
// original grammar specifies a single action per statement; this
// implementation accepts a comma-separated list of actions as a
// deliberate, documented extension (see the accompanying design notes).
type AlterTableStatement struct {
	Name    Identifier
	Actions []*AlterTableAction
}

func (*AlterTableStatement) isNode()      {}
func (*AlterTableStatement) isStatement() {}

// SelectStatement is a SELECT query_expression, optionally a set
// combination of query specifications (UNION/INTERSECT/EXCEPT).
type SelectStatement struct {
	Query *QueryExpression
}

func (*SelectStatement) isNode()      {}
func (*SelectStatement) isStatement() {}

// InsertStatement is INSERT INTO <name> [(<columns>)] <query_expression>,
// where the query expression is either a table value constructor (VALUES)
// or a SELECT.
type InsertStatement struct {
	TableName Identifier
	Columns   []Identifier
	Query     *QueryExpression
}

func (*InsertStatement) isNode()      {}
func (*InsertStatement) isStatement() {}

// SetColumnKind discriminates what an UPDATE SET clause assigns.
type SetColumnKind int

const (
	SetColumnNull SetColumnKind = iota
	SetColumnDefault
	SetColumnValue
)

// SetColumn is one `name = value | NULL | DEFAULT` assignment in UPDATE.
type SetColumn struct {
	Name  Identifier
	Kind  SetColumnKind
	Value ValueExpression
}

// UpdateStatement is UPDATE <name> SET <assignments> [WHERE ...].
type UpdateStatement struct {
	TableName  Identifier
	SetColumns []*SetColumn
	Where      *SearchCondition
}

func (*UpdateStatement) isNode()      {}
func (*UpdateStatement) isStatement() {}

// DeleteStatement is DELETE FROM <name> [WHERE ...].
type DeleteStatement struct {
	TableName Identifier
	Where     *SearchCondition
}

func (*DeleteStatement) isNode()      {}
func (*DeleteStatement) isStatement() {}

// CheckOption is the WITH [CASCADED|LOCAL] CHECK OPTION clause of a view.
type CheckOption int

const (
	CheckOptionNone CheckOption = iota
	CheckOptionLocal
	CheckOptionCascaded
)

// CreateViewStatement is CREATE VIEW <name> [(<columns>)] AS
// <query_expression> [WITH [CASCADED|LOCAL] CHECK OPTION].
type CreateViewStatement struct {
	Name        Identifier
	CheckOption CheckOption
	Columns     []Identifier
	Query       *QueryExpression
}

func (*CreateViewStatement) isNode()      {}
func (*CreateViewStatement) isStatement() {}

// DropViewStatement is DROP VIEW <name> [CASCADE|RESTRICT].
type DropViewStatement struct {
	Name      Identifier
	Behaviour DropBehaviour
}

func (*DropViewStatement) isNode()      {}
func (*DropViewStatement) isStatement() {}

// GrantActionKind enumerates the six grantable privilege actions.
type GrantActionKind int

const (
	GrantSelect GrantActionKind = iota
	GrantDelete
	GrantInsert
	GrantUpdate
	GrantReferences
	GrantUsage
)

// GrantAction is one privilege named in a GRANT statement's action list.
// Columns is populated only for UPDATE/REFERENCES/USAGE, which alone
// accept a column-restricted form.
type GrantAction struct {
	Kind    GrantActionKind
	Columns []Identifier
}

// GrantObjectType is the kind of object a GRANT's ON clause names.
type GrantObjectType int

const (
	GrantObjectTable GrantObjectType = iota
	GrantObjectDomain
	GrantObjectCollation
	GrantObjectCharacterSet
	GrantObjectTranslation
)

// GrantStatement is GRANT (ALL PRIVILEGES | action[, ...]) ON
// [object_type] <name> TO (PUBLIC | <identifier>) [WITH GRANT OPTION].
type GrantStatement struct {
	ObjectType      GrantObjectType
	On              Identifier
	To              Identifier // empty lexeme means PUBLIC
	WithGrantOption bool
	Privileges      []GrantAction // empty means ALL PRIVILEGES
}

func (*GrantStatement) isNode()      {}
func (*GrantStatement) isStatement() {}

// ToPublic reports whether the grantee was omitted (implying PUBLIC).
func (g *GrantStatement) ToPublic() bool { return g.To.Empty() }

// AllPrivileges reports whether ALL PRIVILEGES was granted.
func (g *GrantStatement) AllPrivileges() bool { return len(g.Privileges) == 0 }

// CommitStatement is COMMIT [WORK].
type CommitStatement struct{}

func (*CommitStatement) isNode()      {}
func (*CommitStatement) isStatement() {}

// RollbackStatement is ROLLBACK [WORK].
type RollbackStatement struct{}

func (*RollbackStatement) isNode()      {}
func (*RollbackStatement) isStatement() {}
