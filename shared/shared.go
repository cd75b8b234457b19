package shared

import (
	"reflect"
	"venuely/shared/constant"
	"venuely/shared/dto"
	"venuely/shared/timezone"
)

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields maps the non-zero db-tagged fields of an update request to columns and
// stamps modified_at and modified_by. A non-nil pointer counts as set even when it points at a zero value.
func TransformFields(data any, modifiedBy string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	fields := make(map[string]any, val.NumField()+2)

	for index := 0; index < val.NumField(); index++ {
		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" || val.Field(index).IsZero() {
			continue
		}

		fields[column] = val.Field(index).Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = modifiedBy

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByFields builds an AND group of equality filters, in the order given.
func FilterByFields(table string, fieldValues ...any) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for idx := 0; idx+1 < len(fieldValues); idx += 2 {
		field, _ := fieldValues[idx].(string)

		group.Filters = append(group.Filters, dto.Filter{
			Field:    field,
			Value:    fieldValues[idx+1],
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}
