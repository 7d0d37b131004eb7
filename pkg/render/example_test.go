package render_test

import (
	"fmt"

	"github.com/lwmacct/260831-go-pkg-envrender/pkg/render"
)

// Example_substitute 演示基本的占位符替换。
func Example_substitute() {
	table := render.Table{"HOST": "localhost", "PORT": "8080"}

	result, _ := table.Substitute(`server ${{HOST}}:${{PORT}}`)
	fmt.Println(result)

	// Output:
	// server localhost:8080
}

// Example_missingPlaceholder 演示缺失变量的保留语义。
func Example_missingPlaceholder() {
	table := render.Table{}

	result, missing := table.Substitute(`key=${{MISSING}}`)
	fmt.Println(result)
	fmt.Println("missing:", missing)

	// Output:
	// key=${{MISSING}}
	// missing: [MISSING]
}

// Example_deriveOutputPath 演示输出路径推导规则。
func Example_deriveOutputPath() {
	fmt.Println(render.DeriveOutputPath("nginx-values-template.conf"))
	fmt.Println(render.DeriveOutputPath("app.template.yaml"))
	fmt.Println(render.DeriveOutputPath("plain.conf"))

	// Output:
	// nginx-values.conf
	// app.yaml
	// plain.conf
}
