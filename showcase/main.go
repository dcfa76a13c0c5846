// Command showcase demonstrates convention binding against a login view.
package main

import (
	"fmt"

	"github.com/rivet-ui/rivet/pkg/binding"
	"github.com/rivet-ui/rivet/pkg/core"
	"github.com/rivet-ui/rivet/pkg/widgets"
)

// LoginViewModel drives the login view. Field and method names line up
// with element names in buildLoginView; Password is renamed via tag.
type LoginViewModel struct {
	Username string
	Password string `bind:"name=Secret"`
	Remember bool
}

// Login is wired to the button named "Login".
func (vm *LoginViewModel) Login() {
	fmt.Printf("login: user=%s remember=%v\n", vm.Username, vm.Remember)
}

// Status is a computed property bound to the text element of the same name.
func (vm *LoginViewModel) Status() string {
	if vm.Username == "" {
		return "enter a username"
	}
	return "ready"
}

func buildLoginView() core.Widget {
	return widgets.View{
		Name: "LoginView",
		Child: widgets.Column{
			Children: []core.Widget{
				widgets.TextField{Name: "Username", Placeholder: "user"},
				widgets.TextField{Name: "Secret", Placeholder: "password"},
				widgets.Checkbox{Name: "Remember"},
				widgets.Button{Name: "Login", Content: "Sign in", Enabled: true},
				widgets.Text{Name: "Status"},
			},
		},
	}
}

func main() {
	vm := &LoginViewModel{Username: "gopher"}

	owner := core.NewBuildOwner()
	root := core.Inflate(buildLoginView(), owner)
	root.Mount(nil, nil)

	binder := binding.NewBinder(vm)
	bindings := binder.Bind(root)

	fmt.Printf("bound %d elements in scope:\n", len(bindings))
	binding.Apply(bindings, func(b binding.Binding) {
		fmt.Printf("  %-10s -> %s\n", b.Name, b.Member.Name())
	})

	// Simulate an edit through the two-way binding, then refresh.
	if element, ok := binding.FindNamed(binding.NamedDescendants(root), "username"); ok {
		if field, ok := element.Widget().(widgets.TextField); ok {
			field.EnterText("ferris")
		}
	}
	binder.Refresh(bindings)

	if element, ok := binding.FindNamed(binding.NamedDescendants(root), "login"); ok {
		if button, ok := element.Widget().(widgets.Button); ok {
			button.Tap()
		}
	}
}
