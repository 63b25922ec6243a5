// Package skin loads skin textures from disk and normalises them to the
// 64x64 layout the voxelizer reads.
package skin

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"

	"github.com/disintegration/imaging"
	"github.com/hansbonini/skinstatue/pkg/common"
	"golang.org/x/image/webp"
)

// Size is the edge length of a normalised skin.
const Size = 64

// legacyHeight is the height of pre-1.8 skins without left limbs.
const legacyHeight = 32

// Load opens a skin file and returns the normalised texture together with
// the dimensions it had on disk.
func Load(path string) (*image.NRGBA, image.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, image.Point{}, common.NewConversionError(common.KindSkinLoad, common.ErrFailedToLoadSkin, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, image.Point{}, err
	}
	original := img.Bounds().Size()
	common.LogInfo(common.InfoSkinLoaded, path, original.X, original.Y)

	normalized, err := Normalize(img)
	if err != nil {
		return nil, original, err
	}
	return normalized, original, nil
}

// Decode reads an encoded texture. WebP is detected by content sniffing;
// everything else goes through imaging, which covers PNG, JPEG, GIF, BMP
// and TIFF.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, common.NewConversionError(common.KindSkinLoad, common.ErrFailedToLoadSkin, err)
	}

	var img image.Image
	if http.DetectContentType(head) == "image/webp" {
		img, err = webp.Decode(br)
	} else {
		img, err = imaging.Decode(br)
	}
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, common.NewConversionError(common.KindSkinFormat, common.ErrUnsupportedSkinFormat, err)
		}
		return nil, common.NewConversionError(common.KindSkinLoad, common.ErrFailedToDecodeSkin, err)
	}
	return img, nil
}

// Normalize converts img to a 64x64 NRGBA texture. Legacy 64x32 skins get
// their left limbs mirrored from the right ones; square HD skins are
// downscaled with nearest-neighbour sampling.
func Normalize(img image.Image) (*image.NRGBA, error) {
	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()

	if w == Size && h == legacyHeight {
		out = UpgradeLegacy(out)
		common.LogInfo(common.InfoLegacySkinUpgraded)
		w, h = Size, Size
	}

	if w != h {
		common.LogWarn(common.WarnSkinNotSquare, w, h)
		return nil, common.NewConversionError(common.KindSkinDimensions, common.ErrInvalidSkinDimensions,
			fmt.Errorf("%dx%d is not square", w, h))
	}
	if w == Size {
		return out, nil
	}
	if w < Size || w%Size != 0 {
		return nil, common.NewConversionError(common.KindSkinDimensions, common.ErrInvalidSkinDimensions,
			fmt.Errorf("%dx%d is not a multiple of %d", w, h, Size))
	}

	common.LogInfo(common.InfoHDSkinDownscaled, w, h)
	return imaging.Resize(out, Size, Size, imaging.NearestNeighbor), nil
}

// limbFace is one face of a limb in the texture, relative to the limb's
// top-left corner. Legacy upgrades copy src of the right limb to dst of the
// left limb.
type limbFace struct {
	srcX, srcY int
	dstX, dstY int
	w, h       int
}

// Faces of a 4x12x4 limb. The outer side faces swap places when mirrored.
var limbFaces = [...]limbFace{
	{4, 0, 4, 0, 4, 4},    // top
	{8, 0, 8, 0, 4, 4},    // bottom
	{0, 4, 8, 4, 4, 12},   // right side to left side
	{4, 4, 4, 4, 4, 12},   // front
	{8, 4, 0, 4, 4, 12},   // left side to right side
	{12, 4, 12, 4, 4, 12}, // back
}

// Limb origins: right leg to left leg, right arm to left arm.
var legacyLimbs = [...]struct {
	src, dst image.Point
}{
	{image.Pt(0, 16), image.Pt(16, 48)},
	{image.Pt(40, 16), image.Pt(32, 48)},
}

// UpgradeLegacy returns a 64x64 copy of a 64x32 skin with the left leg and
// left arm filled by mirroring the right limbs face by face.
func UpgradeLegacy(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	out := imaging.New(Size, Size, image.Transparent)
	out = imaging.Paste(out, src, image.Pt(0, 0))

	for _, limb := range legacyLimbs {
		for _, f := range limbFaces {
			rect := image.Rect(0, 0, f.w, f.h).Add(limb.src.Add(image.Pt(f.srcX, f.srcY)))
			face := imaging.FlipH(imaging.Crop(src, rect))
			out = imaging.Paste(out, face, limb.dst.Add(image.Pt(f.dstX, f.dstY)))
		}
	}
	return out
}
