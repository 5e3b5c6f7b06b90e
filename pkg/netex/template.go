package netex

import (
	"embed"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/util"
	"golang.org/x/net/html/charset"
)

//go:embed templates/*.xml
var embeddedTemplates embed.FS

// TemplateLoader resolves and parses the document skeleton for a ticket
// variant. Loading is read only and idempotent; every call parses a fresh
// tree so concurrent generation runs never share state.
type TemplateLoader struct {
	fsys fs.FS
}

func NewTemplateLoader() *TemplateLoader {
	env := util.GetEnvironmentVariables()

	if env["FARETEX_TEMPLATE_DIR"] != "" {
		return &TemplateLoader{fsys: os.DirFS(env["FARETEX_TEMPLATE_DIR"])}
	}

	sub, _ := fs.Sub(embeddedTemplates, "templates")
	return &TemplateLoader{fsys: sub}
}

func templateName(variant fares.TicketVariant) string {
	if variant.IsMultiService() {
		return "netex_multiservice.xml"
	}

	return "netex_geozone.xml"
}

func (l *TemplateLoader) Load(variant fares.TicketVariant) (*PublicationDelivery, error) {
	file, err := l.fsys.Open(templateName(variant))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fares.ErrTemplateUnavailable, err)
	}
	defer file.Close()

	var skeleton PublicationDelivery

	d := xml.NewDecoder(file)
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(&skeleton); err != nil {
		return nil, fmt.Errorf("%w: %s", fares.ErrTemplateMalformed, err)
	}

	if skeleton.DataObjects.CompositeFrame == nil || skeleton.DataObjects.CompositeFrame.Frames == nil {
		return nil, fmt.Errorf("%w: skeleton has no composite frame", fares.ErrTemplateMalformed)
	}

	frames := skeleton.DataObjects.CompositeFrame.Frames
	if frames.ResourceFrame == nil {
		return nil, fmt.Errorf("%w: skeleton has no resource frame", fares.ErrTemplateMalformed)
	}
	if frames.SiteFrame == nil {
		return nil, fmt.Errorf("%w: skeleton has no site frame", fares.ErrTemplateMalformed)
	}
	if frames.ServiceCalendarFrame == nil {
		return nil, fmt.Errorf("%w: skeleton has no service calendar frame", fares.ErrTemplateMalformed)
	}

	return &skeleton, nil
}
