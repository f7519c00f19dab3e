package pdf

import (
	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// forms nested deeper than this are not entered
const maxFormDepth = 12

// paintEvent is raised for every image XObject painted by a page, including
// images painted from inside form XObjects.
type paintEvent struct {
	resource string
	// objNr is 0 for images that are not indirect objects
	objNr int
	image *types.StreamDict
}

// contentListener receives the operations of the content streams of a page
// in the order they are drawn.
type contentListener interface {
	beginText()
	nextLine()
	showText(text string)
	paintImage(event paintEvent) error
}

// resourceScope is the resource dictionary in effect for a content stream.
// ledongthuc/pdf sees it as a value, pdfcpu as a dict carrying object
// numbers.
type resourceScope struct {
	res      lpdf.Value
	xObjects types.Dict
	fonts    map[string]lpdf.TextEncoding
}

func newResourceScope(res lpdf.Value, xObjects types.Dict) *resourceScope {
	return &resourceScope{res: res, xObjects: xObjects, fonts: make(map[string]lpdf.TextEncoding)}
}

func (s *resourceScope) encoding(fontName string) lpdf.TextEncoding {
	if enc, found := s.fonts[fontName]; found {
		return enc
	}

	var enc lpdf.TextEncoding = rawEncoding{}
	font := s.res.Key("Font").Key(fontName)
	if font.Kind() == lpdf.Dict {
		enc = lpdf.Font{V: font}.Encoder()
		if toUnicode := font.Key("ToUnicode"); toUnicode.Kind() == lpdf.Stream {
			if cmap, err := readToUnicodeCMap(toUnicode); err == nil {
				enc = cmap
			}
		}
	}
	s.fonts[fontName] = enc
	return enc
}

type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string {
	return raw
}

type contentWalker struct {
	xref     *model.XRefTable
	listener contentListener
	// forms being interpreted, to stop self-referencing forms
	forms map[int]bool
	err   error
}

func newContentWalker(xref *model.XRefTable, listener contentListener) *contentWalker {
	return &contentWalker{xref: xref, listener: listener, forms: make(map[int]bool)}
}

// walkPage interprets the page content streams. The first listener error
// stops the walk.
func (w *contentWalker) walkPage(page lpdf.Page, pageNr int) error {
	pageDict, _, inherited, err := w.xref.PageDict(pageNr, false)
	if err != nil {
		return err
	}
	var resources types.Dict
	if o, found := pageDict.Find("Resources"); found {
		if resources, err = w.xref.DereferenceDict(o); err != nil {
			return err
		}
	} else if inherited != nil {
		resources = inherited.Resources
	}
	scope := newResourceScope(page.Resources(), w.xObjects(resources))

	contents := page.V.Key("Contents")
	switch contents.Kind() {
	case lpdf.Stream:
		w.walkStream(contents, scope, 0)
	case lpdf.Array:
		for i := 0; i < contents.Len() && w.err == nil; i++ {
			w.walkStream(contents.Index(i), scope, 0)
		}
	}
	return w.err
}

func (w *contentWalker) xObjects(resources types.Dict) types.Dict {
	if resources == nil {
		return nil
	}
	o, found := resources.Find("XObject")
	if !found {
		return nil
	}
	xObjects, err := w.xref.DereferenceDict(o)
	if err != nil {
		return nil
	}
	return xObjects
}

func (w *contentWalker) walkStream(strm lpdf.Value, scope *resourceScope, depth int) {
	var enc lpdf.TextEncoding = rawEncoding{}
	show := func(v lpdf.Value) {
		if v.Kind() == lpdf.String {
			w.listener.showText(enc.Decode(v.RawString()))
		}
	}

	lpdf.Interpret(strm, func(stk *lpdf.Stack, op string) {
		n := stk.Len()
		args := make([]lpdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		if w.err != nil {
			return
		}

		switch op {
		case "BT":
			w.listener.beginText()
		case "Tf":
			if n == 2 {
				enc = scope.encoding(args[0].Name())
			}
		case "T*":
			w.listener.nextLine()
		case "'":
			if n == 1 {
				w.listener.nextLine()
				show(args[0])
			}
		case "\"":
			if n == 3 {
				w.listener.nextLine()
				show(args[2])
			}
		case "Tj":
			if n == 1 {
				show(args[0])
			}
		case "TJ":
			if n == 1 {
				for i := 0; i < args[0].Len(); i++ {
					show(args[0].Index(i))
				}
			}
		case "Do":
			if n == 1 {
				w.paint(args[0].Name(), scope, depth)
			}
		}
	})
}

func (w *contentWalker) paint(name string, scope *resourceScope, depth int) {
	o, found := scope.xObjects.Find(name)
	if !found {
		return
	}
	objNr := 0
	if ref, ok := o.(types.IndirectRef); ok {
		objNr = ref.ObjectNumber.Value()
	}
	sd, _, err := w.xref.DereferenceStreamDict(o)
	if err != nil {
		w.err = err
		return
	}
	if sd == nil {
		return
	}

	subtype := sd.Subtype()
	if subtype == nil {
		return
	}
	switch *subtype {
	case "Image":
		w.err = w.listener.paintImage(paintEvent{resource: name, objNr: objNr, image: sd})
	case "Form":
		if depth >= maxFormDepth || (objNr != 0 && w.forms[objNr]) {
			return
		}
		w.walkForm(name, objNr, sd, scope, depth)
	}
}

// walkForm interprets a form XObject with its own resources, falling back
// to the resources of the stream painting it.
func (w *contentWalker) walkForm(name string, objNr int, sd *types.StreamDict, parent *resourceScope, depth int) {
	form := parent.res.Key("XObject").Key(name)
	if form.Kind() != lpdf.Stream {
		return
	}

	scope := parent
	if res := form.Key("Resources"); res.Kind() == lpdf.Dict {
		xObjects := parent.xObjects
		if o, found := sd.Find("Resources"); found {
			resources, err := w.xref.DereferenceDict(o)
			if err != nil {
				w.err = err
				return
			}
			xObjects = w.xObjects(resources)
		}
		scope = newResourceScope(res, xObjects)
	}

	if objNr != 0 {
		w.forms[objNr] = true
		defer delete(w.forms, objNr)
	}
	w.walkStream(form, scope, depth+1)
}
