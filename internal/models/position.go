package models

import (
	"encoding/json"
	"fmt"
)

// PositionKind определяет схему адресации точки
type PositionKind string

const (
	// PositionGeo - географические координаты (для обьектов типа MAP)
	PositionGeo PositionKind = "geo"
	// PositionPercent - проценты относительно изображения (для обьектов типа IMAGE)
	PositionPercent PositionKind = "percent"
)

// Position представляет координату обьекта или контрольной точки.
// Это тегированный вариант: заполнены либо Lat/Lng, либо XPercent/YPercent,
// в зависимости от Kind. Потребители должны переключаться по Kind,
// а не угадывать по заполненным полям.
type Position struct {
	Kind     PositionKind
	Lat      float64
	Lng      float64
	XPercent float64
	YPercent float64
}

// NewGeoPosition создает географическую позицию
func NewGeoPosition(lat, lng float64) Position {
	return Position{Kind: PositionGeo, Lat: lat, Lng: lng}
}

// NewPercentPosition создает позицию в процентах изображения
func NewPercentPosition(x, y float64) Position {
	return Position{Kind: PositionPercent, XPercent: x, YPercent: y}
}

// DefaultGeoPosition - запасная координата для точек без размещения на карте
func DefaultGeoPosition() Position {
	return NewGeoPosition(41.3, 69.3)
}

// DefaultPercentPosition - запасная координата для точек без размещения на изображении
func DefaultPercentPosition() Position {
	return NewPercentPosition(15, 15)
}

// Validate проверяет, что координаты находятся в допустимых границах
func (p Position) Validate() error {
	switch p.Kind {
	case PositionGeo:
		if p.Lat < -90 || p.Lat > 90 {
			return fmt.Errorf("latitude %f out of range [-90, 90]", p.Lat)
		}
		if p.Lng < -180 || p.Lng > 180 {
			return fmt.Errorf("longitude %f out of range [-180, 180]", p.Lng)
		}
	case PositionPercent:
		if p.XPercent < 0 || p.XPercent > 100 {
			return fmt.Errorf("xPercent %f out of range [0, 100]", p.XPercent)
		}
		if p.YPercent < 0 || p.YPercent > 100 {
			return fmt.Errorf("yPercent %f out of range [0, 100]", p.YPercent)
		}
	default:
		return fmt.Errorf("unknown position kind: %q", p.Kind)
	}
	return nil
}

// MarshalJSON сериализует только поля активной схемы
func (p Position) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PositionGeo:
		return json.Marshal(struct {
			Kind PositionKind `json:"kind"`
			Lat  float64      `json:"lat"`
			Lng  float64      `json:"lng"`
		}{p.Kind, p.Lat, p.Lng})
	case PositionPercent:
		return json.Marshal(struct {
			Kind     PositionKind `json:"kind"`
			XPercent float64      `json:"xPercent"`
			YPercent float64      `json:"yPercent"`
		}{p.Kind, p.XPercent, p.YPercent})
	}
	return nil, fmt.Errorf("cannot marshal position with unknown kind %q", p.Kind)
}

// positionWire - промежуточная форма для JSON: старый клиент присылает
// {lat,lng} или {xPercent,yPercent} без поля kind
type positionWire struct {
	Kind     *PositionKind `json:"kind"`
	Lat      *float64      `json:"lat"`
	Lng      *float64      `json:"lng"`
	XPercent *float64      `json:"xPercent"`
	YPercent *float64      `json:"yPercent"`
}

// UnmarshalJSON восстанавливает вариант из JSON. Если kind не указан,
// схема выводится из набора присутствующих полей.
func (p *Position) UnmarshalJSON(data []byte) error {
	var w positionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to unmarshal position: %w", err)
	}

	kind := PositionKind("")
	if w.Kind != nil {
		kind = *w.Kind
	} else if w.Lat != nil || w.Lng != nil {
		kind = PositionGeo
	} else if w.XPercent != nil || w.YPercent != nil {
		kind = PositionPercent
	}

	switch kind {
	case PositionGeo:
		if w.Lat == nil || w.Lng == nil {
			return fmt.Errorf("geo position requires both lat and lng")
		}
		if w.XPercent != nil || w.YPercent != nil {
			return fmt.Errorf("geo position must not carry percent fields")
		}
		*p = NewGeoPosition(*w.Lat, *w.Lng)
	case PositionPercent:
		if w.XPercent == nil || w.YPercent == nil {
			return fmt.Errorf("percent position requires both xPercent and yPercent")
		}
		if w.Lat != nil || w.Lng != nil {
			return fmt.Errorf("percent position must not carry geo fields")
		}
		*p = NewPercentPosition(*w.XPercent, *w.YPercent)
	default:
		return fmt.Errorf("position has neither geo nor percent fields")
	}
	return nil
}
