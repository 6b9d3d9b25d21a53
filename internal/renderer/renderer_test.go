package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RendererTestSuite struct {
	suite.Suite
}

func (suite *RendererTestSuite) TestRenderTable() {
	var output bytes.Buffer

	NewRenderer(&output).RenderTable(
		[]interface{}{"Symbol", "Code"},
		[][]interface{}{
			{`"a"`, `"1"`},
			{`"b"`, `"0"`},
		})

	rendered := output.String()
	suite.Require().Contains(rendered, "SYMBOL")
	suite.Require().Contains(rendered, "CODE")

	// rows keep their order
	a := strings.Index(rendered, `"a"`)
	b := strings.Index(rendered, `"b"`)
	suite.Require().True(a > 0 && b > a, "unexpected table:\n%s", rendered)
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}
