// Package binding populates and renders LocalDateTime struct fields from/to text.
//
// Fields are matched by name, or by format tag name, e.g.
//
//	type Event struct {
//		Start datetime.LocalDateTime  `format:"name=start"`
//		End   *datetime.LocalDateTime `format:"name=end,dateFormat=yyyy-MM-dd HH:mm"`
//	}
//
// A field dateFormat (or timeLayout) takes precedence over converter formats.
package binding

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/viant/datetime"
	"github.com/viant/datetime/layout"
	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

var (
	localDateTimeType    = reflect.TypeOf(datetime.LocalDateTime{})
	localDateTimePtrType = reflect.PointerTo(localDateTimeType)
)

type (
	// Binder binds LocalDateTime fields
	Binder struct {
		converter *datetime.Converter
		plans     *syncMap[reflect.Type, []*fieldPlan]
	}

	fieldPlan struct {
		name      string
		field     *xunsafe.Field
		isPtr     bool
		converter *datetime.Converter
	}
)

// Bind parses values into dest LocalDateTime fields, dest has to be a pointer to struct
func (b *Binder) Bind(dest interface{}, values map[string]string) error {
	plans, ptr, err := b.lookup(dest)
	if err != nil {
		return err
	}
	for _, plan := range plans {
		text, ok := values[plan.name]
		if !ok {
			continue
		}
		value, ok := plan.converter.ParseDate(text)
		if !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid %s value: %q", plan.name, text))
		}
		if plan.isPtr {
			plan.field.SetValue(ptr, &value)
			continue
		}
		plan.field.SetValue(ptr, value)
	}
	return nil
}

// Render formats src LocalDateTime fields as UTC instants, nil pointer fields are skipped
func (b *Binder) Render(src interface{}) (map[string]string, error) {
	plans, ptr, err := b.lookup(src)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(plans))
	for _, plan := range plans {
		var value *datetime.LocalDateTime
		if plan.isPtr {
			value, _ = plan.field.Value(ptr).(*datetime.LocalDateTime)
			if value == nil {
				continue
			}
		} else {
			local, _ := plan.field.Value(ptr).(datetime.LocalDateTime)
			value = &local
		}
		text, err := plan.converter.ToISOString(value)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to render %s", plan.name)).
				WithCause(err)
		}
		result[plan.name] = text
	}
	return result, nil
}

func (b *Binder) lookup(value interface{}) ([]*fieldPlan, unsafe.Pointer, error) {
	if value == nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("expected pointer to struct, but had nil")
	}
	rType := reflect.TypeOf(value)
	if rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("expected pointer to struct, but had %T", value))
	}
	ptr := xunsafe.AsPointer(value)
	if ptr == nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("expected non nil %T", value))
	}
	structType := rType.Elem()
	if plans, ok := b.plans.get(structType); ok {
		return plans, ptr, nil
	}
	plans, err := b.compile(structType)
	if err != nil {
		return nil, nil, err
	}
	b.plans.put(structType, plans)
	return plans, ptr, nil
}

func (b *Binder) compile(structType reflect.Type) ([]*fieldPlan, error) {
	xStruct := xunsafe.NewStruct(structType)
	var plans []*fieldPlan
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		if field.Type != localDateTimeType && field.Type != localDateTimePtrType {
			continue
		}
		tag, err := format.Parse(field.Tag)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid %s.%s format tag", structType.Name(), field.Name)).
				WithCause(err)
		}
		if tag == nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}
		plan := &fieldPlan{name: field.Name, field: field, isPtr: field.Type == localDateTimePtrType, converter: b.converter}
		if tag.Name != "" {
			plan.name = tag.Name
		}
		switch {
		case tag.DateFormat != "":
			plan.converter = b.converter.Extend(layout.NewPattern(tag.DateFormat))
		case tag.TimeLayout != "":
			plan.converter = b.converter.Extend(layout.NewLayout("", tag.TimeLayout))
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// New creates a binder
func New(converter *datetime.Converter) *Binder {
	return &Binder{converter: converter, plans: newSyncMap[reflect.Type, []*fieldPlan]()}
}
