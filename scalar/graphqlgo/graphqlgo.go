// Package graphqlgo registers local date-time scalar with github.com/graphql-go/graphql
package graphqlgo

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/viant/datetime/scalar"
)

// NewScalar creates graphql scalar, invalid values are reported as nil which graphql turns into validation errors
func NewScalar(aScalar *scalar.Scalar) *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        aScalar.Name,
		Description: aScalar.Description,
		Serialize: func(value interface{}) interface{} {
			text, err := aScalar.Serialize(value)
			if err != nil {
				return nil
			}
			return text
		},
		ParseValue: func(value interface{}) interface{} {
			return parse(aScalar, value)
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			if literal, ok := valueAST.(*ast.StringValue); ok {
				return parse(aScalar, literal.Value)
			}
			return nil
		},
	})
}

func parse(aScalar *scalar.Scalar, value interface{}) interface{} {
	local, err := aScalar.ParseValue(value)
	if err != nil {
		return nil
	}
	return local
}
