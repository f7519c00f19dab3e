package pdf

import (
	"bytes"
	"fmt"
)

// rawObject is one indirect object of a hand written document. Objects are
// numbered from 1 in the order they are passed to buildRawPDF, object 1 is
// the catalog.
type rawObject struct {
	dict   string
	stream []byte
}

func buildRawPDF(objects ...rawObject) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n", i+1)
		if obj.stream == nil {
			buf.WriteString(obj.dict)
		} else {
			fmt.Fprintf(buf, "<< %s /Length %d >>\nstream\n", obj.dict, len(obj.stream))
			buf.Write(obj.stream)
			buf.WriteString("\nendstream")
		}
		buf.WriteString("\nendobj\n")
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, offset := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// singlePagePDF builds a one page document whose page object is 3 and
// content stream is 4. Further objects start at number 5.
func singlePagePDF(pageResources string, content string, objects ...rawObject) []byte {
	all := []rawObject{
		{dict: "<< /Type /Catalog /Pages 2 0 R >>"},
		{dict: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{dict: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Resources " + pageResources + " /Contents 4 0 R >>"},
		{stream: []byte(content)},
	}
	return buildRawPDF(append(all, objects...)...)
}

func jpegImageObject(jpeg []byte, width, height int) rawObject {
	return rawObject{
		dict: fmt.Sprintf("/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode",
			width, height),
		stream: jpeg,
	}
}
