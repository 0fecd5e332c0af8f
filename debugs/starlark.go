package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/jehanni/parsing"
	"github.com/reusee/jehanni/tokens"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func tokenValue(token tokens.Token) starlark.Value {
	d := starlark.NewDict(3)
	var kind, text string
	switch token := token.(type) {
	case tokens.Identifier:
		kind, text = "identifier", token.Text
	case tokens.IntLiteral:
		kind, text = "int_literal", token.Text
	case tokens.Definition:
		kind = "definition"
	case tokens.Newline:
		kind = "newline"
	case tokens.EndOfInput:
		kind = "end_of_input"
	default:
		panic(fmt.Errorf("unknown token type %T", token))
	}
	d.SetKey(starlark.String("kind"), starlark.String(kind))
	d.SetKey(starlark.String("text"), starlark.String(text))
	d.SetKey(starlark.String("display"), starlark.String(token.String()))
	return d
}

func nodeValue(node parsing.Node) starlark.Value {
	d := starlark.NewDict(3)
	switch node := node.(type) {
	case *parsing.Line:
		d.SetKey(starlark.String("kind"), starlark.String("line"))
		d.SetKey(starlark.String("inner"), nodeValue(node.Inner))
	case *parsing.VarDefinition:
		d.SetKey(starlark.String("kind"), starlark.String("var_definition"))
		d.SetKey(starlark.String("name"), starlark.String(node.Name.Text))
		d.SetKey(starlark.String("value"), starlark.String(node.Value.Text))
	case *parsing.VarName:
		d.SetKey(starlark.String("kind"), starlark.String("var_name"))
		d.SetKey(starlark.String("text"), starlark.String(node.Text))
	case *parsing.Value:
		d.SetKey(starlark.String("kind"), starlark.String("value"))
		d.SetKey(starlark.String("text"), starlark.String(node.Text))
	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
	return d
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case tokens.Token:
		return tokenValue(v)

	case parsing.Node:
		return nodeValue(v)

	case *parsing.Program:
		if v == nil {
			return starlark.None
		}
		elems := make([]starlark.Value, len(v.Lines))
		for i, line := range v.Lines {
			elems[i] = nodeValue(line)
		}
		return starlark.NewList(elems)

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)

	case int64:
		return starlark.MakeInt64(v)

	case uint64:
		return starlark.MakeUint64(v)

	case float64:
		return starlark.Float(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range value.Len() {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
