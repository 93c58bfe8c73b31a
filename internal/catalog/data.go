package catalog

import "github.com/mmeshcher/abhiko-system/internal/model"

// Avatars содержит набор аватаров, предлагаемых при регистрации.
var Avatars = []string{
	"https://placehold.co/100x100.png",
	"https://placehold.co/100x100.png",
	"https://placehold.co/100x100.png",
	"https://placehold.co/100x100.png",
	"https://placehold.co/100x100.png",
}

var restaurants = []model.Restaurant{
	{
		ID:       "r1",
		Name:     "The Royal Tandoor",
		Location: "Mumbai, Maharashtra",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "North Indian",
		Menu: []model.MenuItem{
			{ID: "m1", Name: "Paneer Butter Masala", Image: "https://placehold.co/300x200.png", Description: "Cubes of fresh paneer simmered in a rich, creamy tomato and cashew gravy.", Price: 370},
			{ID: "m2", Name: "Dal Makhani", Image: "https://placehold.co/300x200.png", Description: "A classic slow-cooked black lentil curry with kidney beans, butter, and cream.", Price: 320},
			{ID: "m3", Name: "Garlic Naan", Image: "https://placehold.co/300x200.png", Description: "Soft, fluffy leavened bread baked in a tandoor and brushed with garlic butter.", Price: 80},
			{ID: "m4", Name: "Tandoori Chicken", Image: "https://placehold.co/300x200.png", Description: "Chicken marinated overnight in yogurt and a blend of spices, then roasted in a clay oven.", Price: 480},
			{ID: "m5", Name: "Mango Lassi", Image: "https://placehold.co/300x200.png", Description: "A creamy and refreshing yogurt drink blended with sweet mango pulp.", Price: 140},
			{ID: "m6", Name: "Gulab Jamun", Image: "https://placehold.co/300x200.png", Description: "Soft, melt-in-your-mouth milk-solid balls soaked in a fragrant rose-cardamom syrup.", Price: 160},
		},
	},
	{
		ID:       "r2",
		Name:     "Coastal Curry House",
		Location: "Chennai, Tamil Nadu",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "South Indian",
		Menu: []model.MenuItem{
			{ID: "m7", Name: "Masala Dosa", Image: "https://placehold.co/300x200.png", Description: "A thin, crispy rice and lentil crepe filled with a savory spiced potato mash.", Price: 160},
			{ID: "m8", Name: "Idli Sambar", Image: "https://placehold.co/300x200.png", Description: "Pillowy soft steamed rice and lentil cakes served with a tangy vegetable stew.", Price: 110},
			{ID: "m9", Name: "Medu Vada", Image: "https://placehold.co/300x200.png", Description: "Crispy on the outside, fluffy on the inside savory lentil doughnuts, served with coconut chutney.", Price: 90},
			{ID: "m10", Name: "Rasam", Image: "https://placehold.co/300x200.png", Description: "A traditional tangy and spicy soup made with tamarind, tomatoes, and spices.", Price: 70},
			{ID: "m11", Name: "South Indian Filter Coffee", Image: "https://placehold.co/300x200.png", Description: "A strong, aromatic, and frothy milk coffee brewed with a traditional filter.", Price: 60},
			{ID: "m12", Name: "Chicken Chettinad", Image: "https://placehold.co/300x200.png", Description: "A fiery and aromatic chicken curry made with a blend of 28 roasted spices.", Price: 400},
		},
	},
	{
		ID:       "r3",
		Name:     "Bengal Spice",
		Location: "Kolkata, West Bengal",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "Bengali",
		Menu: []model.MenuItem{
			{ID: "m13", Name: "Chicken Kathi Roll", Image: "https://placehold.co/300x200.png", Description: "Juicy chicken tikka, onions, and sauces wrapped in a flaky, pan-fried paratha.", Price: 190},
			{ID: "m14", Name: "Paneer Kathi Roll", Image: "https://placehold.co/300x200.png", Description: "Spiced paneer, mixed peppers, and tangy sauces in a soft paratha wrap.", Price: 170},
			{ID: "m15", Name: "Bhetki Fish Fry", Image: "https://placehold.co/300x200.png", Description: "A classic Kolkata snack featuring a crumb-fried fillet of Bhetki fish.", Price: 280},
			{ID: "m16", Name: "Kosha Mangsho", Image: "https://placehold.co/300x200.png", Description: "A rich, slow-cooked mutton curry with a thick, spicy gravy and tender meat.", Price: 520},
			{ID: "m17", Name: "Mishti Doi", Image: "https://placehold.co/300x200.png", Description: "A traditional sweet yogurt, fermented and caramelized to perfection.", Price: 110},
			{ID: "m18", Name: "Sondesh", Image: "https://placehold.co/300x200.png", Description: "A delicate Bengali sweet made from fresh cottage cheese (chhena) and sugar.", Price: 100},
		},
	},
	{
		ID:       "r4",
		Name:     "Nizami Kitchens",
		Location: "Hyderabad, Telangana",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "Hyderabadi",
		Menu: []model.MenuItem{
			{ID: "m19", Name: "Chicken Dum Biryani", Image: "https://placehold.co/300x200.png", Description: "Fragrant basmati rice and tender chicken, slow-cooked in a sealed pot with saffron and spices.", Price: 420},
			{ID: "m20", Name: "Mutton Haleem", Image: "https://placehold.co/300x200.png", Description: "A rich, creamy paste of meat, lentils, and pounded wheat, cooked for hours.", Price: 550},
			{ID: "m21", Name: "Mirchi ka Salan", Image: "https://placehold.co/300x200.png", Description: "A tangy curry of green chillies cooked in a peanut, sesame, and coconut gravy.", Price: 220},
			{ID: "m22", Name: "Qubani ka Meetha", Image: "https://placehold.co/300x200.png", Description: "A classic Hyderabadi dessert of dried apricots, topped with fresh cream or custard.", Price: 190},
			{ID: "m23", Name: "Pathar ka Gosht", Image: "https://placehold.co/300x200.png", Description: "Mutton marinated and cooked on a hot stone slab, resulting in incredibly tender meat.", Price: 600},
			{ID: "m24", Name: "Double ka Meetha", Image: "https://placehold.co/300x200.png", Description: "A decadent bread pudding made of fried bread slices soaked in hot milk with saffron.", Price: 170},
		},
	},
	{
		ID:       "r5",
		Name:     "Gujarat Grills",
		Location: "Ahmedabad, Gujarat",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "Gujarati",
		Menu: []model.MenuItem{
			{ID: "m25", Name: "Dhokla", Image: "https://placehold.co/300x200.png", Description: "A soft and spongy steamed cake made from fermented rice and chickpea flour.", Price: 120},
			{ID: "m26", Name: "Khandvi", Image: "https://placehold.co/300x200.png", Description: "Tightly rolled, bite-sized pieces of gram flour and yogurt, seasoned with mustard seeds.", Price: 140},
			{ID: "m27", Name: "Undhiyu", Image: "https://placehold.co/300x200.png", Description: "A classic mixed vegetable dish, slow-cooked upside down in an earthen pot.", Price: 300},
			{ID: "m28", Name: "Thepla", Image: "https://placehold.co/300x200.png", Description: "Soft flatbreads made from whole wheat flour, fenugreek leaves, and spices.", Price: 90},
			{ID: "m29", Name: "Basundi", Image: "https://placehold.co/300x200.png", Description: "A sweetened, dense milk dessert flavored with cardamom and nuts.", Price: 180},
			{ID: "m30", Name: "Fafda-Jalebi", Image: "https://placehold.co/300x200.png", Description: "The ultimate Gujarati breakfast combo of savory crunchy strips and sweet crispy spirals.", Price: 150},
		},
	},
	{
		ID:       "r6",
		Name:     "Rajasthani Rasoi",
		Location: "Jaipur, Rajasthan",
		Image:    "https://placehold.co/600x400.png",
		Cuisine:  "Rajasthani",
		Menu: []model.MenuItem{
			{ID: "m31", Name: "Dal Baati Churma", Image: "https://placehold.co/300x200.png", Description: "The iconic Rajasthani trio: baked wheat balls, spicy lentil curry, and sweet powdered wheat.", Price: 450},
			{ID: "m32", Name: "Laal Maas", Image: "https://placehold.co/300x200.png", Description: "A fiery mutton curry made with a paste of red Mathania chillies and hot spices.", Price: 580},
			{ID: "m33", Name: "Gatte ki Sabzi", Image: "https://placehold.co/300x200.png", Description: "Gram flour dumplings cooked in a tangy yogurt-based curry.", Price: 280},
			{ID: "m34", Name: "Ker Sangri", Image: "https://placehold.co/300x200.png", Description: "A unique tangy side dish made from desert beans and berries.", Price: 320},
			{ID: "m35", Name: "Pyaaz Kachori", Image: "https://placehold.co/300x200.png", Description: "A deep-fried pastry filled with a spicy onion mixture, served with chutney.", Price: 80},
			{ID: "m36", Name: "Ghevar", Image: "https://placehold.co/300x200.png", Description: "A disc-shaped sweet cake made from flour, soaked in sugar syrup, and topped with rabri.", Price: 220},
		},
	},
}
