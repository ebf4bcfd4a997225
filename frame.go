package parambuilder

import (
	"runtime"
	"strings"
)

// Frame is information about where a failing call was made from
type Frame struct {
	File     string
	Line     int
	Name     string
	Package  string
	Function string
}

var packagePath = func() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	// name is "<import path>.<func>"
	if last := strings.LastIndex(name, "/"); last >= 0 {
		if period := strings.Index(name[last:], "."); period >= 0 {
			return name[:last+period]
		}
	} else if period := strings.Index(name, "."); period >= 0 {
		return name[:period]
	}
	return name
}()

// newFrame returns the first frame outside this package (test files count as outside)
//
//go:noinline
func newFrame(skip int) *Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2+skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var first *Frame
	for {
		rf, more := frames.Next()
		f := frameFrom(rf)
		if first == nil {
			first = f
		}
		if f.Package != packagePath || strings.HasSuffix(f.File, "_test.go") {
			return f
		}
		if !more {
			break
		}
	}
	return first
}

func frameFrom(rf runtime.Frame) *Frame {
	f := &Frame{
		File:     rf.File,
		Line:     rf.Line,
		Function: rf.Function,
	}
	name := rf.Function
	pkg := ""
	if last := strings.LastIndex(name, "/"); last >= 0 {
		pkg += name[:last] + "/"
		name = name[last+1:]
	}
	if period := strings.Index(name, "."); period >= 0 {
		pkg += name[:period]
		name = name[period+1:]
	}
	f.Name, f.Package = name, pkg
	return f
}
