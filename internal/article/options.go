package article

// Option sets offered by the parameters panel.
var (
	FontFamilyOptions = OptionSet{
		Name: "font family",
		Options: []Option{
			{Value: "Open Sans", Title: "Open Sans", ClassName: "open-sans"},
			{Value: "Ubuntu", Title: "Ubuntu", ClassName: "ubuntu"},
			{Value: "Cormorant Garamond", Title: "Cormorant Garamond", ClassName: "cormorant-garamond"},
			{Value: "Days One", Title: "Days One", ClassName: "days-one"},
			{Value: "Merriweather", Title: "Merriweather", ClassName: "merriweather"},
		},
	}

	FontSizeOptions = OptionSet{
		Name: "font size",
		Options: []Option{
			{Value: "18px", Title: "18px", ClassName: "font-size-18"},
			{Value: "25px", Title: "25px", ClassName: "font-size-25"},
			{Value: "38px", Title: "38px", ClassName: "font-size-38"},
		},
	}

	FontColors = OptionSet{
		Name: "font color",
		Options: []Option{
			{Value: "#000000", Title: "Black", ClassName: "font-black"},
			{Value: "#FFFFFF", Title: "White", ClassName: "font-white"},
			{Value: "#C4C4C4", Title: "Gray", ClassName: "font-gray"},
			{Value: "#FEAFE8", Title: "Pink", ClassName: "font-pink"},
			{Value: "#FD24AF", Title: "Fuchsia", ClassName: "font-fuchsia"},
			{Value: "#FFC802", Title: "Yellow", ClassName: "font-yellow"},
			{Value: "#80D994", Title: "Green", ClassName: "font-green"},
			{Value: "#6FC1FD", Title: "Blue", ClassName: "font-blue"},
			{Value: "#5F249F", Title: "Purple", ClassName: "font-purple"},
			{Value: "#D7BB8F", Title: "Beige", ClassName: "font-beige"},
			{Value: "#6B4226", Title: "Coffee", ClassName: "font-coffee"},
		},
	}

	BackgroundColors = OptionSet{
		Name: "background color",
		Options: []Option{
			{Value: "#FFFFFF", Title: "White", ClassName: "bg-white"},
			{Value: "#000000", Title: "Black", ClassName: "bg-black"},
			{Value: "#C4C4C4", Title: "Gray", ClassName: "bg-gray"},
			{Value: "#FFC3EE", Title: "Pink", ClassName: "bg-pink"},
			{Value: "#FD24AF", Title: "Fuchsia", ClassName: "bg-fuchsia"},
			{Value: "#FFF4C2", Title: "Yellow", ClassName: "bg-yellow"},
			{Value: "#CDF6D6", Title: "Green", ClassName: "bg-green"},
			{Value: "#D4ECFF", Title: "Blue", ClassName: "bg-blue"},
			{Value: "#E3CDFF", Title: "Purple", ClassName: "bg-purple"},
			{Value: "#FCF0DC", Title: "Beige", ClassName: "bg-beige"},
		},
	}

	ContentWidths = OptionSet{
		Name: "content width",
		Options: []Option{
			{Value: "1394px", Title: "Wide", ClassName: "width-wide"},
			{Value: "948px", Title: "Narrow", ClassName: "width-narrow"},
		},
	}
)

// DefaultState is the configuration the panel starts with and resets to.
var DefaultState = State{
	FontFamily:      FontFamilyOptions.Options[0],
	FontSize:        FontSizeOptions.Options[0],
	FontColor:       FontColors.Options[0],
	BackgroundColor: BackgroundColors.Options[0],
	ContentWidth:    ContentWidths.Options[0],
}
