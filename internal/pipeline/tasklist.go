package pipeline

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Class names GitHub uses on task lists.
const (
	taskItemClass     = "task-list-item"
	taskListClass     = "contains-task-list"
	taskCheckboxClass = "task-list-item-checkbox"
)

// checkboxPriority must stay below extension.TaskList's renderer priority (500).
const checkboxPriority = 100

// TaskList is goldmark's task list extension with clickable checkboxes
// and GitHub's task-list classes on items and lists.
var TaskList = &taskList{}

type taskList struct{}

func (e *taskList) Extend(m goldmark.Markdown) {
	extension.TaskList.Extend(m)
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&taskListTransformer{}, 999),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&checkboxRenderer{Config: html.NewConfig()}, checkboxPriority),
	))
}

// taskListTransformer tags list items that start with a checkbox.
type taskListTransformer struct{}

func (t *taskListTransformer) Transform(doc *gast.Document, _ text.Reader, _ parser.Context) {
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindTaskCheckBox {
			return gast.WalkContinue, nil
		}
		// TaskCheckBox -> TextBlock/Paragraph -> ListItem -> List
		item := n.Parent()
		if item != nil {
			item = item.Parent()
		}
		if item == nil || item.Kind() != gast.KindListItem {
			return gast.WalkContinue, nil
		}
		item.SetAttributeString("class", []byte(taskItemClass))
		if list := item.Parent(); list != nil {
			list.SetAttributeString("class", []byte(taskListClass))
		}
		return gast.WalkSkipChildren, nil
	})
}

// checkboxRenderer renders task checkboxes as enabled inputs.
type checkboxRenderer struct {
	html.Config
}

func (r *checkboxRenderer) SetOption(name renderer.OptionName, value any) {
	r.Config.SetOption(name, value)
}

func (r *checkboxRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindTaskCheckBox, r.renderCheckbox)
}

func (r *checkboxRenderer) renderCheckbox(w util.BufWriter, _ []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		return gast.WalkContinue, nil
	}
	n := node.(*ast.TaskCheckBox)

	_, _ = w.WriteString(`<input type="checkbox" class="` + taskCheckboxClass + `"`)
	if n.IsChecked {
		_, _ = w.WriteString(` checked=""`)
	}
	if r.XHTML {
		_, _ = w.WriteString(" /> ")
	} else {
		_, _ = w.WriteString("> ")
	}
	return gast.WalkContinue, nil
}
