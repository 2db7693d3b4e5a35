package layout

import "github.com/casaiglesia/graphics/internal/assets"

// Design tables ported coordinate-for-coordinate from the Canva layouts.
// ppt_4_3 is designed at 1024x768, the Instagram formats at 1080, Facebook
// at 1200; every format renders at twice its base size.
var specs = map[Format]FormatSpec{
    PPT43: {
        Kind:       PPT43,
        BaseWidth:  1024,
        BaseHeight: 768,
        Multiplier: 2,
        Illustration: IllustrationBox{X: 530, Y: 140, W: 470, H: 513, Opacity: 0.15},
        Lines: []Line{
            {77, 83, 425, 83},
            {599, 83, 947, 83},
            {75, 690, 947, 690},
        },
        Logo: &LogoBox{X: 457, Y: 34, Size: 110},
        Title: TitleSpec{
            X: 59, Y: 151,
            MaxWidth: 460, MaxHeight: 270,
            BaseSize: 115, MinSize: 55,
            Role: assets.TitleLight,
        },
        Subtitle:   SubtitleSpec{Size: 40, Gap: 18, RowShift: 55},
        DetailSize: 31,
        DetailRole: assets.DetailItalic,
        Rows: [3]DetailRow{
            {IconX: 75, IconY: 440, IconSize: 40, TextX: 129, TextY: 444},
            {IconX: 77, IconY: 499, IconSize: 39, TextX: 129, TextY: 500},
            {IconX: 75, IconY: 551, IconSize: 40, TextX: 131, TextY: 557},
        },
        LocationMaxWidth:   420,
        LocationLineHeight: 40,
    },

    InstagramPost: {
        Kind:       InstagramPost,
        BaseWidth:  1080,
        BaseHeight: 1080,
        Multiplier: 2,
        Illustration: IllustrationBox{X: 240, Y: 0, W: 954, H: 1041, Opacity: 0.15},
        Lines: []Line{
            {42, 109, 1038, 109},
            {42, 940, 461, 940},
            {613, 940, 1032, 940},
        },
        Logo: &LogoBox{X: 497, Y: 901, Size: 87},
        Title: TitleSpec{
            X: 42, Y: 140,
            MaxWidth: 996, MaxHeight: 320,
            BaseSize: 140, MinSize: 70,
            Role: assets.TitleRegular,
        },
        Subtitle:   SubtitleSpec{Size: 52, Gap: 20, RowShift: 70},
        DetailSize: 47,
        DetailRole: assets.Detail,
        Rows: [3]DetailRow{
            {IconX: 42, IconY: 486, IconSize: 52, TextX: 109, TextY: 480},
            {IconX: 42, IconY: 613, IconSize: 52, TextX: 109, TextY: 603},
            {IconX: 42, IconY: 726, IconSize: 52, TextX: 109, TextY: 726},
        },
        LocationMaxWidth:   500,
        LocationLineHeight: 50,
    },

    InstagramStory: {
        Kind:       InstagramStory,
        BaseWidth:  1080,
        BaseHeight: 1920,
        Multiplier: 2,
        Illustration: IllustrationBox{X: 63, Y: 750, W: 954, H: 1041, Opacity: 0.15},
        // The story layout has no decorative lines and no logo.
        Title: TitleSpec{
            X: 72, Y: 286,
            MaxWidth: 936, MaxHeight: 480,
            BaseSize: 175, MinSize: 90,
            Role: assets.TitleRegular,
        },
        Subtitle:   SubtitleSpec{Size: 70, Gap: 26, RowShift: 90},
        DetailSize: 65,
        DetailRole: assets.Detail,
        Rows: [3]DetailRow{
            {IconX: 72, IconY: 807, IconSize: 69, TextX: 161, TextY: 798},
            {IconX: 72, IconY: 974, IconSize: 69, TextX: 161, TextY: 960},
            {IconX: 72, IconY: 1122, IconSize: 69, TextX: 161, TextY: 1122},
        },
        LocationMaxWidth:   850,
        LocationLineHeight: 70,
    },

    FacebookPost: {
        Kind:       FacebookPost,
        BaseWidth:  1200,
        BaseHeight: 630,
        Multiplier: 2,
        Illustration: IllustrationBox{X: 50, Y: 20, W: 545, H: 595, Opacity: 0.13},
        Lines: []Line{
            {63, 63, 1137, 63},
            {63, 560, 1025, 560},
        },
        Logo: &LogoBox{X: 1044, Y: 512, Size: 93},
        Title: TitleSpec{
            X: 63, Y: 138,
            MaxWidth: 550, MaxHeight: 330,
            BaseSize: 130, MinSize: 60,
            Role:    assets.TitleRegular,
            CenterV: true, BandTop: 63, BandBottom: 560,
        },
        Subtitle:   SubtitleSpec{Size: 40, Gap: 16, RowShift: 46},
        DetailSize: 34,
        DetailRole: assets.Detail,
        Rows: [3]DetailRow{
            {IconX: 645, IconY: 174, IconSize: 36, TextX: 691, TextY: 170},
            {IconX: 645, IconY: 262, IconSize: 36, TextX: 691, TextY: 255},
            {IconX: 645, IconY: 339, IconSize: 36, TextX: 691, TextY: 339},
        },
        LocationMaxWidth:   430,
        LocationLineHeight: 38,
    },
}
