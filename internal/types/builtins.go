package types

// BuiltinType names the classifiers every program can refer to.
type BuiltinType string

const (
	Any       BuiltinType = "Any"
	Nothing   BuiltinType = "Nothing"
	Unit      BuiltinType = "Unit"
	Int       BuiltinType = "Int"
	String    BuiltinType = "String"
	Boolean   BuiltinType = "Boolean"
	Throwable BuiltinType = "Throwable"
	Function  BuiltinType = "Function"
)

// BuiltinTypes contains all valid built-in types
var BuiltinTypes = map[string]bool{
	string(Any):       true,
	string(Nothing):   true,
	string(Unit):      true,
	string(Int):       true,
	string(String):    true,
	string(Boolean):   true,
	string(Throwable): true,
	string(Function):  true,
}

func IsBuiltinType(typeName string) bool {
	return BuiltinTypes[typeName]
}

// Shared instances. Types are immutable so these may be handed out freely.
var (
	AnyType         = NewConcrete(string(Any))
	NullableAnyType = NewNullable(string(Any))
	NothingType     = NewConcrete(string(Nothing))
	NullType        = NewNullable(string(Nothing))
	UnitType        = NewConcrete(string(Unit))
	IntType         = NewConcrete(string(Int))
	StringType      = NewConcrete(string(String))
	BooleanType     = NewConcrete(string(Boolean))
	ThrowableType   = NewConcrete(string(Throwable))
	FunctionType    = NewConcrete(string(Function))
)
