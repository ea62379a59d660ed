package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

var lambdaStorage = ctype.SConsteval | ctype.SConstexpr | ctype.SMutable |
	ctype.SNoexcept | ctype.SThrow

func (c *checker) checkLambda(n *ast.Node) bool {
	if !c.langHas(dialect.Lambdas) {
		c.error(diag.SemKindNotSupported, n.Span, "%s", c.notSupported("lambdas")).Emit()
		return false
	}
	if bad := n.Type.Store & ctype.SAnyStorageLike &^ lambdaStorage; !bad.IsNone() {
		c.error(diag.SemFuncStorage, n.Span, "lambdas can not be %s",
			ctype.Type{Store: bad}.StoreString()).Emit()
		return false
	}
	return c.checkLambdaCaptures(n)
}

func (c *checker) checkLambdaCaptures(n *ast.Node) bool {
	seen := make(map[string]bool, len(n.Captures))
	capturedThis := false
	for i, capID := range n.Captures {
		cap := c.tree.Get(capID)
		switch cap.Capture.Kind {
		case ast.CaptureCopy, ast.CaptureReference:
			if i != 0 {
				c.error(diag.SemLambdaCapture, cap.Span,
					"default capture must be specified first").Emit()
				return false
			}

		case ast.CaptureThis:
			if capturedThis {
				c.error(diag.SemLambdaCapture, cap.Span,
					`"this" previously captured`).Emit()
				return false
			}
			capturedThis = true

		case ast.CaptureStarThis:
			if !c.langHas(dialect.StarThisCapture) {
				c.error(diag.SemLambdaCapture, cap.Span, "%s",
					c.notSupported(`capturing "*this"`)).Emit()
				return false
			}
			if capturedThis {
				c.error(diag.SemLambdaCapture, cap.Span,
					`"this" previously captured`).Emit()
				return false
			}
			capturedThis = true

		case ast.CaptureVariable:
			name := cap.SName.Local()
			if seen[name] {
				c.error(diag.SemLambdaCapture, cap.Span,
					"%q previously captured", name).Emit()
				return false
			}
			seen[name] = true
		}
	}
	return true
}
