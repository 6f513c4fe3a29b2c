package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Handwritten MUS serializers for the catalogue types. The catalogue schema is
// small and changes rarely, so the codecs are maintained by hand instead of
// generated.
var (
	IDMUS             = idMUS{}
	KindTagMUS        = kindTagMUS{}
	CatalogueEntryMUS = catalogueEntryMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

type kindTagMUS struct{}

func (kindTagMUS) Marshal(kind KindTag, bs []byte) int {
	return varint.Int.Marshal(int(kind), bs)
}

func (kindTagMUS) Unmarshal(bs []byte) (KindTag, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return KindTag(v), n, err
}

func (kindTagMUS) Size(kind KindTag) int {
	return varint.Int.Size(int(kind))
}

type catalogueEntryMUS struct{}

func (catalogueEntryMUS) Marshal(e CatalogueEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Name, bs[n:])
	n += ord.String.Marshal(e.Link, bs[n:])
	n += ord.String.Marshal(e.Address, bs[n:])
	n += ord.String.Marshal(e.Phone, bs[n:])
	n += ord.String.Marshal(e.Webpage, bs[n:])
	n += ord.String.Marshal(e.Tags, bs[n:])
	n += ord.String.Marshal(e.Type, bs[n:])
	n += ord.String.Marshal(e.Description, bs[n:])
	n += ord.String.Marshal(e.Picture, bs[n:])
	n += ord.String.Marshal(e.RegionName, bs[n:])
	n += ord.String.Marshal(e.Destination, bs[n:])
	n += ord.String.Marshal(e.Place, bs[n:])
	n += varint.Float64.Marshal(e.GpsX, bs[n:])
	n += varint.Float64.Marshal(e.GpsY, bs[n:])
	n += ord.Bool.Marshal(e.IsTopResult, bs[n:])
	n += KindTagMUS.Marshal(e.Kind, bs[n:])
	return n
}

func (catalogueEntryMUS) Unmarshal(bs []byte) (e CatalogueEntry, n int, err error) {
	var n1 int
	if e.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	strFields := []*string{
		&e.Name, &e.Link, &e.Address, &e.Phone, &e.Webpage, &e.Tags,
		&e.Type, &e.Description, &e.Picture, &e.RegionName, &e.Destination,
		&e.Place,
	}
	for _, field := range strFields {
		if *field, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	if e.GpsX, n1, err = varint.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.GpsY, n1, err = varint.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.IsTopResult, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Kind, n1, err = KindTagMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (catalogueEntryMUS) Size(e CatalogueEntry) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Name)
	size += ord.String.Size(e.Link)
	size += ord.String.Size(e.Address)
	size += ord.String.Size(e.Phone)
	size += ord.String.Size(e.Webpage)
	size += ord.String.Size(e.Tags)
	size += ord.String.Size(e.Type)
	size += ord.String.Size(e.Description)
	size += ord.String.Size(e.Picture)
	size += ord.String.Size(e.RegionName)
	size += ord.String.Size(e.Destination)
	size += ord.String.Size(e.Place)
	size += varint.Float64.Size(e.GpsX)
	size += varint.Float64.Size(e.GpsY)
	size += ord.Bool.Size(e.IsTopResult)
	size += KindTagMUS.Size(e.Kind)
	return size
}
