package gen

import "text/template"

// bindingFlags makes GetField succeed whatever the field's access level and
// storage class.
const bindingFlags = "BindingFlags.NonPublic | BindingFlags.Public | BindingFlags.Instance | BindingFlags.Static"

// targetTypeConst is the name of the cached typeof(...) constant.
const targetTypeConst = "TargetType"

// unitData holds all data needed for the wrapper template.
type unitData struct {
	Namespace  string
	Indent     string // class level
	Member     string // class members
	Body       string // method bodies
	ClassName  string
	TargetName string
	TypeConst  string
	Flags      string
	Accessors  []accessorData
}

// accessorData represents the getter/setter pair of one field.
type accessorData struct {
	Field     string
	ValueType string
	Getter    string
	Setter    string
}

var unitTemplate = template.Must(template.New("wrapper").Parse(`using System;
using System.Reflection;

{{if .Namespace}}namespace {{.Namespace}}
{
{{end -}}
{{.Indent}}public static class {{.ClassName}}
{{.Indent}}{
{{.Member}}private static readonly Type {{.TypeConst}} = typeof({{.TargetName}});
{{range .Accessors}}
{{$.Member}}public static {{.ValueType}} {{.Getter}}(this {{$.TargetName}} target)
{{$.Member}}{
{{$.Body}}FieldInfo field = {{$.TypeConst}}.GetField("{{.Field}}", {{$.Flags}});
{{$.Body}}return ({{.ValueType}}) field.GetValue(target);
{{$.Member}}}

{{$.Member}}public static void {{.Setter}}(this {{$.TargetName}} target, {{.ValueType}} value)
{{$.Member}}{
{{$.Body}}FieldInfo field = {{$.TypeConst}}.GetField("{{.Field}}", {{$.Flags}});
{{$.Body}}field.SetValue(target, value);
{{$.Member}}}
{{end -}}
{{.Indent}}}
{{if .Namespace}}}
{{end -}}
`))
