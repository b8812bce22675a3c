package store

// Static catalog seeded at startup. Ids, prices and flags are part of the
// contract the storefront UI depends on, so they are fixed rather than
// generated.

func (s *MemStore) seed() {
	now := s.nowFunc()

	categories := []Category{
		{ID: "1", Name: "Mobile Phones", NameEs: "Teléfonos Móviles", Slug: "mobile-phones", ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
		{ID: "2", Name: "Computers", NameEs: "Computadoras", Slug: "computers", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
		{ID: "3", Name: "TVs", NameEs: "Televisores", Slug: "tvs", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
		{ID: "4", Name: "Audio", NameEs: "Audio", Slug: "audio", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
		{ID: "5", Name: "Home Appliances", NameEs: "Electrodomésticos", Slug: "home-appliances", ImageURL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
		{ID: "6", Name: "Gaming", NameEs: "Videojuegos", Slug: "gaming", ImageURL: "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200"},
	}
	for _, c := range categories {
		c.CreatedAt = now
		s.categories[c.ID] = c
	}

	products := []Product{
		{ID: "1", Name: "Google Pixel 10 Pro XL 5G 256GB (Moonstone)", NameEs: "Google Pixel 10 Pro XL 5G 256GB (Moonstone)", Description: "Latest Google flagship with advanced AI photography and Tensor G5 chip", DescriptionEs: "Último buque insignia de Google con fotografía AI avanzada y chip Tensor G5", Price: "1399.00", OriginalPrice: "1599.00", CategoryID: "1", Brand: "Google", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 200},
		{ID: "2", Name: "Samsung Galaxy S25 Ultra 256GB (Titanium Blue)", NameEs: "Samsung Galaxy S25 Ultra 256GB (Titanio Azul)", Description: "Premium Samsung flagship with S Pen and 200MP camera", DescriptionEs: "Buque insignia premium de Samsung con S Pen y cámara de 200MP", Price: "1587.00", OriginalPrice: "1899.00", CategoryID: "1", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 312},
		{ID: "3", Name: "Apple iPhone 16 Pro Max 256GB (Desert Titanium)", NameEs: "Apple iPhone 16 Pro Max 256GB (Titanio Desierto)", Description: "Latest iPhone with A18 Pro chip and enhanced camera system", DescriptionEs: "Último iPhone con chip A18 Pro y sistema de cámara mejorado", Price: "1899.00", CategoryID: "1", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true},
		{ID: "4", Name: "Samsung Galaxy Z Fold7 256GB (Phantom Black)", NameEs: "Samsung Galaxy Z Fold7 256GB (Negro Fantasma)", Description: "Foldable smartphone with dual screens and multitasking capabilities", DescriptionEs: "Smartphone plegable con pantallas duales y capacidades multitarea", Price: "2499.00", OriginalPrice: "2799.00", CategoryID: "1", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1556656793-08538906a9f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 300},
		{ID: "5", Name: "Apple iPhone 16e 128GB (Black)", NameEs: "Apple iPhone 16e 128GB (Negro)", Description: "Affordable iPhone with A18 chip and Super Retina XDR display", DescriptionEs: "iPhone asequible con chip A18 y pantalla Super Retina XDR", Price: "799.00", OriginalPrice: "899.00", CategoryID: "1", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1564466809058-bf4114613385?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "6", Name: "Google Pixel 9a 5G 128GB (Porcelain)", NameEs: "Google Pixel 9a 5G 128GB (Porcelana)", Description: "Mid-range Pixel with AI photography and clean Android experience", DescriptionEs: "Pixel de gama media con fotografía AI y experiencia Android limpia", Price: "649.00", OriginalPrice: "749.00", CategoryID: "1", Brand: "Google", ImageURL: "https://images.unsplash.com/photo-1542751371-adc38448a05e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "7", Name: "Samsung Galaxy A56 5G 128GB (Blue Black)", NameEs: "Samsung Galaxy A56 5G 128GB (Azul Negro)", Description: "Affordable 5G smartphone with AMOLED display and long battery life", DescriptionEs: "Smartphone 5G asequible con pantalla AMOLED y larga duración de batería", Price: "499.00", OriginalPrice: "599.00", CategoryID: "1", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1567581935884-3349723552ca?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "8", Name: "OPPO Reno13 Pro 256GB (Starlight Pink)", NameEs: "OPPO Reno13 Pro 256GB (Rosa Luz de Estrella)", Description: "Stylish smartphone with portrait photography and fast charging", DescriptionEs: "Smartphone elegante con fotografía de retratos y carga rápida", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "1", Brand: "OPPO", ImageURL: "https://images.unsplash.com/photo-1580910051074-3eb694886505?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "9", Name: "Motorola Razr 50 Ultra (Midnight Blue)", NameEs: "Motorola Razr 50 Ultra (Azul Medianoche)", Description: "Compact foldable phone with retro design and modern features", DescriptionEs: "Teléfono plegable compacto con diseño retro y características modernas", Price: "1699.00", OriginalPrice: "1899.00", CategoryID: "1", Brand: "Motorola", ImageURL: "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "10", Name: "ASUS ROG Phone 9 Pro (Phantom Black)", NameEs: "ASUS ROG Phone 9 Pro (Negro Fantasma)", Description: "Ultimate gaming phone with 165Hz display and cooling system", DescriptionEs: "Teléfono gaming definitivo con pantalla 165Hz y sistema de refrigeración", Price: "1499.00", OriginalPrice: "1699.00", CategoryID: "1", Brand: "ASUS", ImageURL: "https://images.unsplash.com/photo-1583225214464-9296029427aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "11", Name: "Apple MacBook Pro 14\" M4 Chip 512GB (Space Black)", NameEs: "Apple MacBook Pro 14\" Chip M4 512GB (Negro Espacial)", Description: "Professional laptop with M4 chip for ultimate performance", DescriptionEs: "Portátil profesional con chip M4 para máximo rendimiento", Price: "2399.00", CategoryID: "2", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true},
		{ID: "12", Name: "Microsoft Surface Pro 11th Edition Copilot+ PC 13\" (Black)", NameEs: "Microsoft Surface Pro 11ma Edición Copilot+ PC 13\" (Negro)", Description: "2-in-1 laptop with Snapdragon X Elite and AI capabilities", DescriptionEs: "Portátil 2-en-1 con Snapdragon X Elite y capacidades AI", Price: "1749.00", OriginalPrice: "2199.00", CategoryID: "2", Brand: "Microsoft", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 450},
		{ID: "13", Name: "MSI Katana 15 HX 15.6\" QHD 165Hz Gaming Laptop (GeForce RTX 5050)", NameEs: "MSI Katana 15 HX 15.6\" QHD 165Hz Portátil Gaming (GeForce RTX 5050)", Description: "High-performance gaming laptop with RTX graphics", DescriptionEs: "Portátil gaming de alto rendimiento con gráficos RTX", Price: "2399.00", OriginalPrice: "2699.00", CategoryID: "2", Brand: "MSI", ImageURL: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 300},
		{ID: "14", Name: "ASUS Vivobook S16 16\" OLED Laptop (Snapdragon X Elite)", NameEs: "ASUS Vivobook S16 16\" OLED Portátil (Snapdragon X Elite)", Description: "Premium ultrabook with OLED display and all-day battery", DescriptionEs: "Ultrabook premium con pantalla OLED y batería para todo el día", Price: "1699.00", OriginalPrice: "1999.00", CategoryID: "2", Brand: "ASUS", ImageURL: "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "15", Name: "Lenovo Yoga S7 14\" 2.8K OLED Laptop (Intel Core Ultra 5)", NameEs: "Lenovo Yoga S7 14\" 2.8K OLED Portátil (Intel Core Ultra 5)", Description: "Creative laptop with stunning OLED display and AI features", DescriptionEs: "Portátil creativo con impresionante pantalla OLED y características AI", Price: "1499.00", OriginalPrice: "1799.00", CategoryID: "2", Brand: "Lenovo", ImageURL: "https://images.unsplash.com/photo-1606248897732-2c5ffe759c04?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "16", Name: "Apple iPad Pro 11\" 256GB Wi-Fi (Space Black M4)", NameEs: "Apple iPad Pro 11\" 256GB Wi-Fi (Negro Espacial M4)", Description: "Pro tablet with M4 chip for professional creative work", DescriptionEs: "Tablet Pro con chip M4 para trabajo creativo profesional", Price: "1399.00", CategoryID: "2", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "17", Name: "HP 14s 14\" HD Laptop (Intel Celeron 128GB)", NameEs: "HP 14s 14\" HD Portátil (Intel Celeron 128GB)", Description: "Budget-friendly laptop for everyday computing needs", DescriptionEs: "Portátil económico para necesidades informáticas diarias", Price: "449.00", OriginalPrice: "549.00", CategoryID: "2", Brand: "HP", ImageURL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "18", Name: "Samsung Galaxy Tab S11 12.4\" Wi-Fi 256GB (Graphite)", NameEs: "Samsung Galaxy Tab S11 12.4\" Wi-Fi 256GB (Grafito)", Description: "Premium Android tablet with S Pen for productivity", DescriptionEs: "Tablet Android premium con S Pen para productividad", Price: "1099.00", OriginalPrice: "1299.00", CategoryID: "2", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1561154464-82e9adf32764?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "19", Name: "Dell Alienware x16 R2 16\" Gaming Laptop (RTX 5070)", NameEs: "Dell Alienware x16 R2 16\" Portátil Gaming (RTX 5070)", Description: "Ultra-thin gaming laptop with premium performance", DescriptionEs: "Portátil gaming ultra-delgado con rendimiento premium", Price: "3999.00", OriginalPrice: "4499.00", CategoryID: "2", Brand: "Dell", ImageURL: "https://images.unsplash.com/photo-1603481588273-2f908a9a7a1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 500},
		{ID: "20", Name: "Lenovo Chrome 14M9610 14\" WUXGA OLED Touchscreen Chromebook", NameEs: "Lenovo Chrome 14M9610 14\" WUXGA OLED Touchscreen Chromebook", Description: "Affordable Chromebook with OLED display for students", DescriptionEs: "Chromebook asequible con pantalla OLED para estudiantes", Price: "699.00", OriginalPrice: "899.00", CategoryID: "2", Brand: "Lenovo", ImageURL: "https://images.unsplash.com/photo-1484807352052-23338990c6c6?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "21", Name: "Samsung 85\" QN900D Neo QLED 8K Smart TV", NameEs: "Samsung 85\" QN900D Neo QLED 8K Smart TV", Description: "Premium 8K TV with Quantum Matrix Technology and AI upscaling", DescriptionEs: "TV 8K premium con tecnología Quantum Matrix y upscaling AI", Price: "7999.00", OriginalPrice: "9999.00", CategoryID: "3", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 2000},
		{ID: "22", Name: "LG 77\" G4 OLED evo 4K Smart TV", NameEs: "LG 77\" G4 OLED evo 4K Smart TV", Description: "Gallery Design OLED TV with perfect blacks and Dolby Vision", DescriptionEs: "TV OLED con diseño Gallery con negros perfectos y Dolby Vision", Price: "4999.00", OriginalPrice: "5999.00", CategoryID: "3", Brand: "LG", ImageURL: "https://images.unsplash.com/photo-1461151304267-38535e780c79?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 1000},
		{ID: "23", Name: "Sony 65\" X95L BRAVIA XR Mini LED 4K TV", NameEs: "Sony 65\" X95L BRAVIA XR Mini LED 4K TV", Description: "Premium TV with Cognitive Processor XR and XR Triluminos Pro", DescriptionEs: "TV premium con procesador cognitivo XR y XR Triluminos Pro", Price: "3499.00", OriginalPrice: "3999.00", CategoryID: "3", Brand: "Sony", ImageURL: "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 500},
		{ID: "24", Name: "TCL 75\" C855K QD-Mini LED 4K Google TV", NameEs: "TCL 75\" C855K QD-Mini LED 4K Google TV", Description: "Large screen TV with Quantum Dot technology and Google TV", DescriptionEs: "TV de pantalla grande con tecnología Quantum Dot y Google TV", Price: "2199.00", OriginalPrice: "2799.00", CategoryID: "3", Brand: "TCL", ImageURL: "https://images.unsplash.com/photo-1567690187548-f07b1d7bf5a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 600},
		{ID: "25", Name: "Hisense 55\" U8N ULED 4K Mini-LED TV", NameEs: "Hisense 55\" U8N ULED 4K Mini-LED TV", Description: "Mid-range TV with Mini-LED backlighting and Dolby Vision", DescriptionEs: "TV de gama media con retroiluminación Mini-LED y Dolby Vision", Price: "1199.00", OriginalPrice: "1499.00", CategoryID: "3", Brand: "Hisense", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "26", Name: "Samsung 43\" Q60D QLED 4K Smart TV", NameEs: "Samsung 43\" Q60D QLED 4K Smart TV", Description: "Compact QLED TV perfect for bedrooms and small spaces", DescriptionEs: "TV QLED compacto perfecto para dormitorios y espacios pequeños", Price: "899.00", OriginalPrice: "1199.00", CategoryID: "3", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "27", Name: "Sony WH-1000XM5 Wireless Noise Canceling Headphones", NameEs: "Sony WH-1000XM5 Auriculares Inalámbricos con Cancelación de Ruido", Description: "Industry-leading noise canceling with 30-hour battery life", DescriptionEs: "Cancelación de ruido líder en la industria con 30 horas de batería", Price: "349.00", OriginalPrice: "449.00", CategoryID: "4", Brand: "Sony", ImageURL: "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 100},
		{ID: "28", Name: "Apple AirPods Pro (3rd Generation) USB-C", NameEs: "Apple AirPods Pro (3ra Generación) USB-C", Description: "Premium earbuds with adaptive transparency and spatial audio", DescriptionEs: "Auriculares premium con transparencia adaptiva y audio espacial", Price: "399.00", CategoryID: "4", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true},
		{ID: "29", Name: "Bose QuietComfort Ultra Headphones", NameEs: "Bose QuietComfort Ultra Auriculares", Description: "Premium noise canceling headphones with spatial audio", DescriptionEs: "Auriculares premium con cancelación de ruido y audio espacial", Price: "549.00", OriginalPrice: "649.00", CategoryID: "4", Brand: "Bose", ImageURL: "https://images.unsplash.com/photo-1545127398-14699f92334b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "30", Name: "JBL Charge 5 Portable Bluetooth Speaker", NameEs: "JBL Charge 5 Altavoz Bluetooth Portátil", Description: "Waterproof speaker with 20-hour playtime and powerbank function", DescriptionEs: "Altavoz resistente al agua con 20 horas de reproducción y función powerbank", Price: "199.00", OriginalPrice: "249.00", CategoryID: "4", Brand: "JBL", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "31", Name: "Sonos Arc Ultra Soundbar", NameEs: "Sonos Arc Ultra Barra de Sonido", Description: "Premium soundbar with Dolby Atmos and voice control", DescriptionEs: "Barra de sonido premium con Dolby Atmos y control por voz", Price: "1499.00", OriginalPrice: "1699.00", CategoryID: "4", Brand: "Sonos", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "32", Name: "Dyson V15 Detect Absolute Vacuum Cleaner", NameEs: "Dyson V15 Detect Absolute Aspiradora", Description: "Advanced cordless vacuum with laser dust detection technology", DescriptionEs: "Aspiradora inalámbrica avanzada con tecnología de detección láser de polvo", Price: "799.00", OriginalPrice: "999.00", CategoryID: "5", Brand: "Dyson", ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true, Discount: 200},
		{ID: "33", Name: "Breville Barista Express Impress Espresso Machine", NameEs: "Breville Barista Express Impress Máquina de Espresso", Description: "Semi-automatic espresso machine with built-in grinder", DescriptionEs: "Máquina de espresso semiautomática con molinillo integrado", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "5", Brand: "Breville", ImageURL: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "34", Name: "Ninja Foodi MAX 15-in-1 SmartLid Multi-Cooker", NameEs: "Ninja Foodi MAX 15-en-1 SmartLid Multi-Cooker", Description: "Versatile cooking appliance with pressure cook, air fry, and more", DescriptionEs: "Electrodoméstico de cocina versátil con cocción a presión, fritura de aire y más", Price: "399.00", OriginalPrice: "499.00", CategoryID: "5", Brand: "Ninja", ImageURL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "35", Name: "KitchenAid Artisan Stand Mixer 4.8L (Empire Red)", NameEs: "KitchenAid Artisan Batidora de Pie 4.8L (Rojo Imperio)", Description: "Iconic stand mixer for baking and food preparation", DescriptionEs: "Batidora de pie icónica para hornear y preparar alimentos", Price: "649.00", OriginalPrice: "799.00", CategoryID: "5", Brand: "KitchenAid", ImageURL: "https://images.unsplash.com/photo-1574781330855-d0db0cc5e66d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 150},
		{ID: "36", Name: "PlayStation 5 Pro Console", NameEs: "Consola PlayStation 5 Pro", Description: "Enhanced PlayStation 5 with improved GPU and 8K gaming", DescriptionEs: "PlayStation 5 mejorado con GPU mejorada y gaming 8K", Price: "1199.00", CategoryID: "6", Brand: "Sony", ImageURL: "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true},
		{ID: "37", Name: "Xbox Series X Console 1TB", NameEs: "Consola Xbox Series X 1TB", Description: "Microsoft's most powerful gaming console with 4K gaming", DescriptionEs: "La consola de juegos más potente de Microsoft con gaming 4K", Price: "749.00", CategoryID: "6", Brand: "Microsoft", ImageURL: "https://images.unsplash.com/photo-1621259182978-fbf93132d53d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Featured: true},
		{ID: "38", Name: "Nintendo Switch OLED Model (White)", NameEs: "Nintendo Switch Modelo OLED (Blanco)", Description: "Handheld gaming console with vibrant OLED screen", DescriptionEs: "Consola de juegos portátil con pantalla OLED vibrante", Price: "539.00", CategoryID: "6", Brand: "Nintendo", ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "39", Name: "Steam Deck OLED 512GB Handheld Gaming PC", NameEs: "Steam Deck OLED 512GB PC Gaming Portátil", Description: "Portable PC gaming with access to Steam library", DescriptionEs: "Gaming PC portátil con acceso a la biblioteca de Steam", Price: "899.00", OriginalPrice: "999.00", CategoryID: "6", Brand: "Valve", ImageURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "40", Name: "Nothing Phone (3a) Pro 256GB (Black)", NameEs: "Nothing Phone (3a) Pro 256GB (Negro)", Description: "Unique transparent design smartphone with Glyph interface", DescriptionEs: "Smartphone de diseño transparente único con interfaz Glyph", Price: "649.00", OriginalPrice: "749.00", CategoryID: "1", Brand: "Nothing", ImageURL: "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "41", Name: "OnePlus 12 256GB (Flowy Emerald)", NameEs: "OnePlus 12 256GB (Esmeralda Fluida)", Description: "Flagship phone with Hasselblad camera and 100W fast charging", DescriptionEs: "Teléfono insignia con cámara Hasselblad y carga rápida de 100W", Price: "1199.00", OriginalPrice: "1399.00", CategoryID: "1", Brand: "OnePlus", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "42", Name: "Xiaomi 14 Ultra 512GB (White)", NameEs: "Xiaomi 14 Ultra 512GB (Blanco)", Description: "Photography-focused flagship with Leica co-engineered cameras", DescriptionEs: "Buque insignia enfocado en fotografía con cámaras co-diseñadas con Leica", Price: "1299.00", OriginalPrice: "1499.00", CategoryID: "1", Brand: "Xiaomi", ImageURL: "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "43", Name: "Huawei Pura 70 Pro 256GB (Gold)", NameEs: "Huawei Pura 70 Pro 256GB (Oro)", Description: "Premium smartphone with advanced photography capabilities", DescriptionEs: "Smartphone premium con capacidades avanzadas de fotografía", Price: "1099.00", OriginalPrice: "1299.00", CategoryID: "1", Brand: "Huawei", ImageURL: "https://images.unsplash.com/photo-1567581935884-3349723552ca?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "44", Name: "Dell XPS 13 Plus 13.4\" OLED Laptop (Intel Core i7)", NameEs: "Dell XPS 13 Plus 13.4\" OLED Portátil (Intel Core i7)", Description: "Ultra-premium ultrabook with stunning OLED display", DescriptionEs: "Ultrabook ultra-premium con impresionante pantalla OLED", Price: "2199.00", OriginalPrice: "2499.00", CategoryID: "2", Brand: "Dell", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "45", Name: "ASUS ProArt Display PA329CV 32\" 4K Monitor", NameEs: "ASUS ProArt Display PA329CV Monitor 32\" 4K", Description: "Professional 4K monitor with 100% sRGB color accuracy", DescriptionEs: "Monitor 4K profesional con 100% precisión de color sRGB", Price: "799.00", OriginalPrice: "999.00", CategoryID: "2", Brand: "ASUS", ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "46", Name: "Apple Studio Display 27\" 5K Retina", NameEs: "Apple Studio Display 27\" 5K Retina", Description: "Professional display with P3 wide color and True Tone", DescriptionEs: "Pantalla profesional con color amplio P3 y True Tone", Price: "2199.00", CategoryID: "2", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1547394765-185e1e68f34e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "47", Name: "Panasonic 65\" MZ2000 Master OLED Pro TV", NameEs: "Panasonic 65\" MZ2000 Master OLED Pro TV", Description: "Professional OLED TV with Hollywood-grade color accuracy", DescriptionEs: "TV OLED profesional con precisión de color de nivel Hollywood", Price: "3999.00", OriginalPrice: "4599.00", CategoryID: "3", Brand: "Panasonic", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 600},
		{ID: "48", Name: "Philips 48\" OLED808 Ambilight 4K TV", NameEs: "Philips 48\" OLED808 Ambilight 4K TV", Description: "OLED TV with immersive Ambilight technology", DescriptionEs: "TV OLED con tecnología Ambilight inmersiva", Price: "1799.00", OriginalPrice: "2199.00", CategoryID: "3", Brand: "Philips", ImageURL: "https://images.unsplash.com/photo-1461151304267-38535e780c79?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 400},
		{ID: "49", Name: "Sennheiser Momentum 4 Wireless Headphones", NameEs: "Sennheiser Momentum 4 Auriculares Inalámbricos", Description: "Audiophile wireless headphones with 60-hour battery", DescriptionEs: "Auriculares inalámbricos audiófilo con batería de 60 horas", Price: "399.00", OriginalPrice: "499.00", CategoryID: "4", Brand: "Sennheiser", ImageURL: "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "50", Name: "Marshall Acton III Bluetooth Speaker", NameEs: "Marshall Acton III Altavoz Bluetooth", Description: "Iconic rock-inspired Bluetooth speaker with classic design", DescriptionEs: "Altavoz Bluetooth icónico inspirado en rock con diseño clásico", Price: "349.00", OriginalPrice: "399.00", CategoryID: "4", Brand: "Marshall", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "51", Name: "TCL 50 Pro NXTPAPER 5G 256GB (Dark Gray)", NameEs: "TCL 50 Pro NXTPAPER 5G 256GB (Gris Oscuro)", Description: "Unique paper-like display technology for eye comfort", DescriptionEs: "Tecnología de pantalla única tipo papel para comodidad visual", Price: "599.00", OriginalPrice: "699.00", CategoryID: "1", Brand: "TCL", ImageURL: "https://images.unsplash.com/photo-1556656793-08538906a9f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "52", Name: "Realme GT 7 Pro 256GB (Mars Orange)", NameEs: "Realme GT 7 Pro 256GB (Naranja Marte)", Description: "Performance flagship with Snapdragon 8 Elite processor", DescriptionEs: "Buque insignia de rendimiento con procesador Snapdragon 8 Elite", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "1", Brand: "Realme", ImageURL: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "53", Name: "Honor Magic7 Pro 512GB (Moonlight White)", NameEs: "Honor Magic7 Pro 512GB (Blanco Luz de Luna)", Description: "AI-powered photography flagship with satellite communication", DescriptionEs: "Buque insignia de fotografía AI con comunicación satelital", Price: "1299.00", OriginalPrice: "1499.00", CategoryID: "1", Brand: "Honor", ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "54", Name: "Vivo X200 Pro 256GB (Aurora Green)", NameEs: "Vivo X200 Pro 256GB (Verde Aurora)", Description: "Camera-centric flagship with ZEISS optics", DescriptionEs: "Buque insignia centrado en cámara con ópticas ZEISS", Price: "1199.00", OriginalPrice: "1399.00", CategoryID: "1", Brand: "Vivo", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "55", Name: "Nokia G310 5G 128GB (Blue)", NameEs: "Nokia G310 5G 128GB (Azul)", Description: "Rugged affordable smartphone with 3 years of updates", DescriptionEs: "Smartphone asequible resistente con 3 años de actualizaciones", Price: "299.00", OriginalPrice: "399.00", CategoryID: "1", Brand: "Nokia", ImageURL: "https://images.unsplash.com/photo-1567581935884-3349723552ca?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "56", Name: "Razer Blade 18 Gaming Laptop (RTX 5080)", NameEs: "Razer Blade 18 Portátil Gaming (RTX 5080)", Description: "Ultimate gaming laptop with 18\" QHD+ display", DescriptionEs: "Portátil gaming definitivo con pantalla QHD+ de 18\"", Price: "5999.00", OriginalPrice: "6999.00", CategoryID: "2", Brand: "Razer", ImageURL: "https://images.unsplash.com/photo-1603481588273-2f908a9a7a1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 1000},
		{ID: "57", Name: "Framework Laptop 13 DIY Edition (Intel Core Ultra 7)", NameEs: "Framework Laptop 13 Edición DIY (Intel Core Ultra 7)", Description: "Modular laptop you can upgrade and repair yourself", DescriptionEs: "Portátil modular que puedes actualizar y reparar tú mismo", Price: "1399.00", OriginalPrice: "1599.00", CategoryID: "2", Brand: "Framework", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "58", Name: "ASUS ROG Ally X Handheld Gaming PC", NameEs: "ASUS ROG Ally X PC Gaming Portátil", Description: "Windows handheld gaming device with ROG performance", DescriptionEs: "Dispositivo gaming portátil Windows con rendimiento ROG", Price: "1199.00", OriginalPrice: "1399.00", CategoryID: "2", Brand: "ASUS", ImageURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "59", Name: "Microsoft Surface Laptop Studio 2 (GeForce RTX 4060)", NameEs: "Microsoft Surface Laptop Studio 2 (GeForce RTX 4060)", Description: "Creative powerhouse with unique tilting touchscreen", DescriptionEs: "Potencia creativa con pantalla táctil inclinable única", Price: "3499.00", OriginalPrice: "3999.00", CategoryID: "2", Brand: "Microsoft", ImageURL: "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 500},
		{ID: "60", Name: "LG Gram 17\" OLED Laptop (Intel Core Ultra 7)", NameEs: "LG Gram 17\" OLED Portátil (Intel Core Ultra 7)", Description: "Ultra-lightweight 17\" laptop with OLED display", DescriptionEs: "Portátil ultra-liviano de 17\" con pantalla OLED", Price: "2299.00", OriginalPrice: "2699.00", CategoryID: "2", Brand: "LG", ImageURL: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 400},
		{ID: "61", Name: "Sony 85\" X95L BRAVIA XR Mini LED 4K TV", NameEs: "Sony 85\" X95L BRAVIA XR Mini LED 4K TV", Description: "Large premium TV with Cognitive Processor XR", DescriptionEs: "TV premium grande con procesador cognitivo XR", Price: "4999.00", OriginalPrice: "5999.00", CategoryID: "3", Brand: "Sony", ImageURL: "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 1000},
		{ID: "62", Name: "LG 83\" C4 OLED evo 4K Smart TV", NameEs: "LG 83\" C4 OLED evo 4K Smart TV", Description: "Massive OLED TV for home theater enthusiasts", DescriptionEs: "TV OLED masivo para entusiastas del cine en casa", Price: "4499.00", OriginalPrice: "5299.00", CategoryID: "3", Brand: "LG", ImageURL: "https://images.unsplash.com/photo-1461151304267-38535e780c79?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 800},
		{ID: "63", Name: "Samsung 50\" QN90D Neo QLED 4K Smart TV", NameEs: "Samsung 50\" QN90D Neo QLED 4K Smart TV", Description: "Mid-size premium TV with Quantum Matrix Technology", DescriptionEs: "TV premium de tamaño medio con tecnología Quantum Matrix", Price: "1799.00", OriginalPrice: "2199.00", CategoryID: "3", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 400},
		{ID: "64", Name: "TCL 98\" C955 QD-Mini LED 4K Google TV", NameEs: "TCL 98\" C955 QD-Mini LED 4K Google TV", Description: "Massive screen TV for ultimate home cinema experience", DescriptionEs: "TV de pantalla masiva para experiencia de cine en casa definitiva", Price: "6999.00", OriginalPrice: "8999.00", CategoryID: "3", Brand: "TCL", ImageURL: "https://images.unsplash.com/photo-1567690187548-f07b1d7bf5a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 2000},
		{ID: "65", Name: "Hisense 75\" U7N ULED 4K Mini-LED TV", NameEs: "Hisense 75\" U7N ULED 4K Mini-LED TV", Description: "Large affordable TV with Mini-LED backlighting", DescriptionEs: "TV grande asequible con retroiluminación Mini-LED", Price: "1999.00", OriginalPrice: "2499.00", CategoryID: "3", Brand: "Hisense", ImageURL: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 500},
		{ID: "66", Name: "Audio-Technica ATH-M50xBT2 Wireless Headphones", NameEs: "Audio-Technica ATH-M50xBT2 Auriculares Inalámbricos", Description: "Professional wireless headphones for monitoring and mixing", DescriptionEs: "Auriculares inalámbricos profesionales para monitoreo y mezcla", Price: "299.00", OriginalPrice: "349.00", CategoryID: "4", Brand: "Audio-Technica", ImageURL: "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "67", Name: "Ultimate Ears MEGABOOM 4 Bluetooth Speaker", NameEs: "Ultimate Ears MEGABOOM 4 Altavoz Bluetooth", Description: "360-degree sound portable speaker with 20-hour battery", DescriptionEs: "Altavoz portátil con sonido 360 grados y 20 horas de batería", Price: "299.00", OriginalPrice: "349.00", CategoryID: "4", Brand: "Ultimate Ears", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "68", Name: "Focal Bathys Wireless Headphones", NameEs: "Focal Bathys Auriculares Inalámbricos", Description: "French audiophile headphones with premium sound quality", DescriptionEs: "Auriculares audiófilo franceses con calidad de sonido premium", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "4", Brand: "Focal", ImageURL: "https://images.unsplash.com/photo-1545127398-14699f92334b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "69", Name: "Sonos Era 300 Smart Speaker", NameEs: "Sonos Era 300 Altavoz Inteligente", Description: "Spatial audio smart speaker with voice control", DescriptionEs: "Altavoz inteligente con audio espacial y control por voz", Price: "699.00", OriginalPrice: "799.00", CategoryID: "4", Brand: "Sonos", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "70", Name: "Bose SoundLink Revolve+ II Bluetooth Speaker", NameEs: "Bose SoundLink Revolve+ II Altavoz Bluetooth", Description: "Portable speaker with 360-degree sound and 17-hour battery", DescriptionEs: "Altavoz portátil con sonido 360 grados y 17 horas de batería", Price: "399.00", OriginalPrice: "449.00", CategoryID: "4", Brand: "Bose", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "71", Name: "Shark IQ Robot Vacuum with Self-Empty Base", NameEs: "Shark IQ Robot Aspiradora con Base de Vaciado Automático", Description: "Smart robot vacuum with mapping and self-emptying", DescriptionEs: "Aspiradora robot inteligente con mapeo y vaciado automático", Price: "599.00", OriginalPrice: "799.00", CategoryID: "5", Brand: "Shark", ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "72", Name: "Smeg Dolce&Gabbana Retro Toaster 4-Slice", NameEs: "Smeg Dolce&Gabbana Tostadora Retro 4 Rebanadas", Description: "Designer toaster with Italian style and premium build", DescriptionEs: "Tostadora de diseño con estilo italiano y construcción premium", Price: "799.00", OriginalPrice: "999.00", CategoryID: "5", Brand: "Smeg", ImageURL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "73", Name: "Vitamix A3500 Ascent Series Blender", NameEs: "Vitamix A3500 Ascent Series Licuadora", Description: "Professional-grade blender for smoothies and food prep", DescriptionEs: "Licuadora de grado profesional para batidos y preparación de alimentos", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "5", Brand: "Vitamix", ImageURL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "74", Name: "De'Longhi La Specialista Arte Espresso Machine", NameEs: "De'Longhi La Specialista Arte Máquina de Espresso", Description: "Semi-automatic espresso machine with advanced milk system", DescriptionEs: "Máquina de espresso semiautomática con sistema de leche avanzado", Price: "1299.00", OriginalPrice: "1599.00", CategoryID: "5", Brand: "De'Longhi", ImageURL: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "75", Name: "iRobot Roomba j9+ Robot Vacuum", NameEs: "iRobot Roomba j9+ Robot Aspiradora", Description: "Advanced robot vacuum with object recognition and self-emptying", DescriptionEs: "Aspiradora robot avanzada con reconocimiento de objetos y vaciado automático", Price: "1399.00", OriginalPrice: "1699.00", CategoryID: "5", Brand: "iRobot", ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 300},
		{ID: "76", Name: "Meta Quest 3S VR Headset 256GB", NameEs: "Meta Quest 3S Visor VR 256GB", Description: "Affordable VR headset with mixed reality capabilities", DescriptionEs: "Visor VR asequible con capacidades de realidad mixta", Price: "499.00", OriginalPrice: "599.00", CategoryID: "6", Brand: "Meta", ImageURL: "https://images.unsplash.com/photo-1617802690992-15d93263d3a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "77", Name: "PlayStation Portal Remote Player", NameEs: "PlayStation Portal Reproductor Remoto", Description: "Handheld device for remote PS5 gaming", DescriptionEs: "Dispositivo portátil para jugar PS5 remotamente", Price: "329.00", CategoryID: "6", Brand: "Sony", ImageURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "78", Name: "Logitech G Pro X Superlight 2 Gaming Mouse", NameEs: "Logitech G Pro X Superlight 2 Ratón Gaming", Description: "Ultra-lightweight wireless gaming mouse for esports", DescriptionEs: "Ratón gaming inalámbrico ultra-liviano para esports", Price: "249.00", OriginalPrice: "299.00", CategoryID: "6", Brand: "Logitech", ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "79", Name: "Razer BlackShark V2 Pro Wireless Gaming Headset", NameEs: "Razer BlackShark V2 Pro Auriculares Gaming Inalámbricos", Description: "Professional gaming headset with THX Spatial Audio", DescriptionEs: "Auriculares gaming profesionales con audio espacial THX", Price: "299.00", OriginalPrice: "349.00", CategoryID: "6", Brand: "Razer", ImageURL: "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "80", Name: "SteelSeries Apex Pro TKL Wireless Gaming Keyboard", NameEs: "SteelSeries Apex Pro TKL Teclado Gaming Inalámbrico", Description: "Tenkeyless mechanical keyboard with adjustable switches", DescriptionEs: "Teclado mecánico tenkeyless con interruptores ajustables", Price: "349.00", OriginalPrice: "399.00", CategoryID: "6", Brand: "SteelSeries", ImageURL: "https://images.unsplash.com/photo-1541728472741-03e45a58cf88?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "81", Name: "Apple Watch Ultra 2 49mm (Titanium)", NameEs: "Apple Watch Ultra 2 49mm (Titanio)", Description: "Rugged smartwatch for extreme sports and outdoor adventures", DescriptionEs: "Smartwatch resistente para deportes extremos y aventuras al aire libre", Price: "1199.00", CategoryID: "4", Brand: "Apple", ImageURL: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "82", Name: "Samsung Galaxy Watch7 Classic 47mm", NameEs: "Samsung Galaxy Watch7 Classic 47mm", Description: "Premium Android smartwatch with rotating bezel", DescriptionEs: "Smartwatch Android premium con bisel giratorio", Price: "599.00", OriginalPrice: "699.00", CategoryID: "4", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "83", Name: "DJI Pocket 3 Creator Combo", NameEs: "DJI Pocket 3 Creator Combo", Description: "Compact 4K camera with gimbal stabilization", DescriptionEs: "Cámara 4K compacta con estabilización gimbal", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "4", Brand: "DJI", ImageURL: "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "84", Name: "GoPro HERO13 Black Creator Edition", NameEs: "GoPro HERO13 Black Edición Creator", Description: "Ultimate action camera with 5.3K video recording", DescriptionEs: "Cámara de acción definitiva con grabación de video 5.3K", Price: "799.00", OriginalPrice: "899.00", CategoryID: "4", Brand: "GoPro", ImageURL: "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "85", Name: "Canon EOS R6 Mark II Mirrorless Camera Body", NameEs: "Canon EOS R6 Mark II Cuerpo de Cámara Sin Espejo", Description: "Professional full-frame camera for photography and video", DescriptionEs: "Cámara profesional full-frame para fotografía y video", Price: "3299.00", OriginalPrice: "3699.00", CategoryID: "4", Brand: "Canon", ImageURL: "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 400},
		{ID: "86", Name: "Nest Hub Max 10\" Smart Display", NameEs: "Nest Hub Max 10\" Pantalla Inteligente", Description: "Smart display with Google Assistant and security camera", DescriptionEs: "Pantalla inteligente con Google Assistant y cámara de seguridad", Price: "399.00", OriginalPrice: "449.00", CategoryID: "4", Brand: "Google", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "87", Name: "Amazon Echo Show 15 Smart Display", NameEs: "Amazon Echo Show 15 Pantalla Inteligente", Description: "Large smart display for family organization and entertainment", DescriptionEs: "Pantalla inteligente grande para organización familiar y entretenimiento", Price: "449.00", OriginalPrice: "499.00", CategoryID: "4", Brand: "Amazon", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "88", Name: "Philips Hue Play HDMI Sync Box 8K", NameEs: "Philips Hue Play HDMI Sync Box 8K", Description: "Sync your lights with TV content for immersive entertainment", DescriptionEs: "Sincroniza tus luces con contenido de TV para entretenimiento inmersivo", Price: "399.00", OriginalPrice: "499.00", CategoryID: "4", Brand: "Philips", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "89", Name: "Ring Video Doorbell Pro 2 with Chime Pro", NameEs: "Ring Video Doorbell Pro 2 con Chime Pro", Description: "Smart doorbell with 1536p video and advanced motion detection", DescriptionEs: "Timbre inteligente con video 1536p y detección de movimiento avanzada", Price: "449.00", OriginalPrice: "549.00", CategoryID: "4", Brand: "Ring", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "90", Name: "Arlo Pro 5S 2K Security Camera System", NameEs: "Arlo Pro 5S Sistema de Cámaras de Seguridad 2K", Description: "Wireless security cameras with color night vision", DescriptionEs: "Cámaras de seguridad inalámbricas con visión nocturna a color", Price: "799.00", OriginalPrice: "999.00", CategoryID: "4", Brand: "Arlo", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "91", Name: "NVIDIA GeForce RTX 5090 Founders Edition", NameEs: "NVIDIA GeForce RTX 5090 Founders Edition", Description: "Ultimate graphics card for 4K gaming and AI workloads", DescriptionEs: "Tarjeta gráfica definitiva para gaming 4K y cargas de trabajo AI", Price: "2299.00", CategoryID: "2", Brand: "NVIDIA", ImageURL: "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true},
		{ID: "92", Name: "AMD Ryzen 9 9950X 16-Core Processor", NameEs: "AMD Ryzen 9 9950X Procesador 16-Core", Description: "High-performance CPU for gaming and content creation", DescriptionEs: "CPU de alto rendimiento para gaming y creación de contenido", Price: "999.00", OriginalPrice: "1199.00", CategoryID: "2", Brand: "AMD", ImageURL: "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "93", Name: "ASUS ROG Strix Z890-E Gaming Motherboard", NameEs: "ASUS ROG Strix Z890-E Placa Base Gaming", Description: "Premium gaming motherboard with WiFi 7 and PCIe 5.0", DescriptionEs: "Placa base gaming premium con WiFi 7 y PCIe 5.0", Price: "699.00", OriginalPrice: "799.00", CategoryID: "2", Brand: "ASUS", ImageURL: "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
		{ID: "94", Name: "Corsair Dominator Platinum RGB 64GB DDR5-6000", NameEs: "Corsair Dominator Platinum RGB 64GB DDR5-6000", Description: "High-speed RGB memory for ultimate performance", DescriptionEs: "Memoria RGB de alta velocidad para máximo rendimiento", Price: "899.00", OriginalPrice: "1099.00", CategoryID: "2", Brand: "Corsair", ImageURL: "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "95", Name: "Samsung 990 PRO 4TB NVMe SSD with Heatsink", NameEs: "Samsung 990 PRO 4TB NVMe SSD con Disipador", Description: "Ultra-fast NVMe SSD for gaming and professional work", DescriptionEs: "SSD NVMe ultra-rápido para gaming y trabajo profesional", Price: "599.00", OriginalPrice: "799.00", CategoryID: "2", Brand: "Samsung", ImageURL: "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "96", Name: "Fitbit Charge 6 Advanced Fitness Tracker", NameEs: "Fitbit Charge 6 Rastreador de Fitness Avanzado", Description: "Advanced fitness tracker with built-in GPS and heart rate monitoring", DescriptionEs: "Rastreador de fitness avanzado con GPS integrado y monitoreo cardíaco", Price: "229.00", OriginalPrice: "279.00", CategoryID: "4", Brand: "Fitbit", ImageURL: "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "97", Name: "Garmin Fenix 8 Solar Multisport GPS Watch", NameEs: "Garmin Fenix 8 Solar Reloj GPS Multideporte", Description: "Premium GPS watch with solar charging and extensive health metrics", DescriptionEs: "Reloj GPS premium con carga solar y métricas de salud extensas", Price: "1299.00", OriginalPrice: "1499.00", CategoryID: "4", Brand: "Garmin", ImageURL: "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 200},
		{ID: "98", Name: "Oura Ring Gen4 Smart Ring (Titanium)", NameEs: "Oura Ring Gen4 Anillo Inteligente (Titanio)", Description: "Advanced health tracking ring with sleep and recovery insights", DescriptionEs: "Anillo de seguimiento de salud avanzado con insights de sueño y recuperación", Price: "449.00", OriginalPrice: "499.00", CategoryID: "4", Brand: "Oura", ImageURL: "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "99", Name: "WHOOP 4.0 Fitness Tracker with 12-Month Membership", NameEs: "WHOOP 4.0 Rastreador de Fitness con Membresía de 12 Meses", Description: "Screenless fitness tracker focused on recovery and strain coaching", DescriptionEs: "Rastreador de fitness sin pantalla enfocado en recuperación y entrenamiento", Price: "399.00", OriginalPrice: "449.00", CategoryID: "4", Brand: "WHOOP", ImageURL: "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 50},
		{ID: "100", Name: "Therabody Theragun PRO Plus Percussion Massager", NameEs: "Therabody Theragun PRO Plus Masajeador de Percusión", Description: "Professional-grade percussive therapy device for muscle recovery", DescriptionEs: "Dispositivo de terapia percusiva de grado profesional para recuperación muscular", Price: "699.00", OriginalPrice: "799.00", CategoryID: "5", Brand: "Therabody", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", InStock: true, Discount: 100},
	}
	for _, p := range products {
		p.CreatedAt = now
		p.Images = []string{}
		s.products[p.ID] = p
	}
}
